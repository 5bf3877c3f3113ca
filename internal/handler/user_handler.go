package handlers

import (
	"net/http"
)

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.UserService.Profile(r.Context(), user.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}
