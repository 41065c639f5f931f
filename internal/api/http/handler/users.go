package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// UsersService defines the master-only account management operations.
type UsersService interface {
	List(ctx context.Context, session model.Session) ([]model.Summary, error)
	Register(ctx context.Context, session model.Session, username, email string) (model.Summary, error)
	Delete(ctx context.Context, session model.Session, secretID string) error
}

// Users handles the account management endpoints.
type Users struct {
	usersService   UsersService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(usersService UsersService, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		usersService:   usersService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List returns all registered users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	summaries, err := h.usersService.List(r.Context(), session)
	if err != nil {
		WriteError(w, err)
		return
	}
	if summaries == nil {
		summaries = []model.Summary{}
	}

	WriteJSON(w, http.StatusOK, summaries)
}

// Register creates a new user account with a fresh secret id.
func (h *Users) Register(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" {
		WriteJSON(w, http.StatusBadRequest, errorResponse{Message: "Username and email are required"})
		return
	}

	summary, err := h.usersService.Register(r.Context(), session, req.Username, req.Email)
	if err != nil {
		h.logger.Error("Users handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, summary)
}

// Delete removes the user with the given secret id and their profile.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	secretID := mux.Vars(r)["secretId"]
	if err := h.usersService.Delete(r.Context(), session, secretID); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
