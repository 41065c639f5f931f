package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"personalbook/internal/model"
)

type errorResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and a {message} body.
// Unknown errors collapse to 500 without leaking internals.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		WriteJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid credentials"})
	case errors.Is(err, model.ErrUnauthenticated):
		WriteJSON(w, http.StatusUnauthorized, errorResponse{Message: "Missing authorization token"})
	case errors.Is(err, model.ErrForbidden):
		WriteJSON(w, http.StatusForbidden, errorResponse{Message: "Forbidden"})
	case errors.Is(err, model.ErrDuplicateEmail):
		WriteJSON(w, http.StatusConflict, errorResponse{Message: "Email already registered"})
	case errors.Is(err, model.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, errorResponse{Message: "Not found"})
	case errors.Is(err, model.ErrDependencyFailure):
		WriteJSON(w, http.StatusBadGateway, errorResponse{Message: "Upstream dependency failed"})
	default:
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}
