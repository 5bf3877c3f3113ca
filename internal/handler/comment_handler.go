package handlers

import (
	"net/http"

	"blogapi/internal/models"

	"github.com/gorilla/mux"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CommentResponse struct {
	Comment *models.Comment `json:"comment"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Content is required", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.Create(r.Context(), mux.Vars(r)["id"], user.UserID, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, CommentResponse{Comment: comment}, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.Delete(r.Context(), mux.Vars(r)["id"], user.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "comment removed"}, http.StatusOK)
}
