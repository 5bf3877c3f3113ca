package handlers

import (
	"net/http"
	"time"

	"blogapi/internal/service"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		if missingRequired(err) {
			WriteError(w, "All fields are required", http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid email address", http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, RegisterResponse{
		ID:        session.User.UserID,
		Name:      session.User.Name,
		Email:     session.User.Email,
		Token:     session.Token,
		CreatedAt: session.User.CreatedAt,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, LoginResponse{
		ID:        session.User.UserID,
		Name:      session.User.Name,
		Token:     session.Token,
		CreatedAt: session.User.CreatedAt,
	}, http.StatusOK)
}

// Logout only acknowledges the request. Tokens are stateless and stay valid
// until they expire; the client is expected to discard its copy.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, MessageResponse{Message: "Logged out"}, http.StatusOK)
}
