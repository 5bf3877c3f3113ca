package handlers

import (
	"net/http"

	"blogapi/internal/middleware"

	"github.com/gorilla/mux"
)

// NewRouter registers every route. Read-only listings are public; the rest
// pass through the auth gate.
//
// Routes are grouped by exact path so a request whose path matches but whose
// method does not always reaches MethodNotAllowedHandler.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	gate := middleware.AuthGate(h.AuthService)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.Path("/api/auth/register").Subrouter().Methods(http.MethodPost).HandlerFunc(h.Register)
	r.Path("/api/auth/login").Subrouter().Methods(http.MethodPost).HandlerFunc(h.Login)
	r.Path("/api/auth/logout").Subrouter().Methods(http.MethodPost).HandlerFunc(h.Logout)
	r.Path("/api/auth/profile").Subrouter().Methods(http.MethodGet).Handler(gate(http.HandlerFunc(h.Profile)))

	posts := r.Path("/api/posts").Subrouter()
	posts.Methods(http.MethodGet).HandlerFunc(h.GetPosts)
	posts.Methods(http.MethodPost).Handler(gate(http.HandlerFunc(h.CreatePost)))

	post := r.Path("/api/posts/{id}").Subrouter()
	post.Methods(http.MethodPut).Handler(gate(http.HandlerFunc(h.UpdatePost)))
	post.Methods(http.MethodDelete).Handler(gate(http.HandlerFunc(h.DeletePost)))

	r.Path("/api/posts/{id}/like").Subrouter().Methods(http.MethodPatch).Handler(gate(http.HandlerFunc(h.ToggleLike)))

	// {id} is the post id for GET and POST, the comment id for DELETE.
	comments := r.Path("/api/comments/{id}").Subrouter()
	comments.Methods(http.MethodGet).HandlerFunc(h.GetComments)
	comments.Methods(http.MethodPost).Handler(gate(http.HandlerFunc(h.CreateComment)))
	comments.Methods(http.MethodDelete).Handler(gate(http.HandlerFunc(h.DeleteComment)))

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
