package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// AuthService defines the login operation.
type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResult, error)
}

// Auth handles the login endpoint.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates either role and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if errors.Is(err, model.ErrInvalidCredentials) {
		// Message texts are part of the existing client contract.
		msg := "Invalid Email or User ID"
		if req.Type == string(model.RoleMaster) {
			msg = "Invalid Admin Credentials"
		}
		WriteJSON(w, http.StatusUnauthorized, errorResponse{Message: msg})
		return
	}
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
