package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidBody = "Invalid request body"
	msgServerError = "Server error"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Message: message}, statusCode)
}

func WriteJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindUnauthenticated:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the client-facing message of a service
// error, or with a generic 500 for anything unexpected.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if serviceErr, ok := service.AsError(err); ok {
		WriteError(w, serviceErr.Message, statusForKind(serviceErr.Kind))
		return
	}

	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	WriteError(w, msgServerError, http.StatusInternalServerError)
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// zero-valued so that field validation reports what is missing.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// missingRequired reports whether err contains a failed "required" rule.
func missingRequired(err error) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			return true
		}
	}
	return false
}

// currentUser returns the user AuthGate attached to the request.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authorized, no token", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}
