package middleware

import (
	"net/http"
	"strings"

	"personalbook/internal/api/http/handler"
	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// TokenParser validates bearer tokens and extracts the session principal.
type TokenParser interface {
	Parse(token string) (model.Session, error)
}

// Authenticate validates bearer tokens and injects the session into the
// request context. A missing token yields 401, an invalid one 403; the two
// states are deliberately distinct.
type Authenticate struct {
	tokenManager   TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Wrap guards a handler, rejecting requests without a valid bearer token.
func (m *Authenticate) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			handler.WriteError(w, model.ErrUnauthenticated)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			m.logger.Info("Authenticate middleware: malformed authorization header",
				"path", r.URL.Path)
			handler.WriteError(w, model.ErrForbidden)
			return
		}

		session, err := m.tokenManager.Parse(tokenString)
		if err != nil {
			m.logger.Info("Authenticate middleware: rejected token",
				"path", r.URL.Path,
				"error", err.Error())
			handler.WriteError(w, model.ErrForbidden)
			return
		}

		ctx := m.contextManager.SetSessionToContext(r.Context(), session)
		next(w, r.WithContext(ctx))
	}
}
