package handlers

import (
	"net/http"

	"blogapi/internal/service"

	"github.com/gorilla/mux"
)

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest fields are optional; an omitted one keeps its value.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Both fields are required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Create(r.Context(), user.UserID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Update(r.Context(), mux.Vars(r)["id"], user.UserID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.PostService.Delete(r.Context(), mux.Vars(r)["id"], user.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post removed"}, http.StatusOK)
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	state, err := h.PostService.ToggleLike(r.Context(), mux.Vars(r)["id"], user.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, state, http.StatusOK)
}
