package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"personalbook/internal/api/http/handler"
	"personalbook/internal/api/http/middleware"
	"personalbook/internal/logger"
	"personalbook/internal/model"
	"personalbook/internal/service"
)

// Router builds the HTTP route table for the personal book API.
type Router struct {
	authService    *service.Auth
	usersService   *service.Users
	profileService *service.Profile
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance over the given services.
func New(
	authService *service.Auth,
	usersService *service.Users,
	profileService *service.Profile,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		usersService:   usersService,
		profileService: profileService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires all routes and middleware and returns the root handler.
// The /api paths are a compatibility contract with existing clients and
// must not change.
func (r *Router) Register() *mux.Router {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	m := mux.NewRouter()
	m.Use(middleware.CORS)
	m.Use(logging.Handle)

	m.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := m.PathPrefix("/api").Subrouter()

	authHandler := handler.NewAuth(r.authService, r.logger)
	api.HandleFunc("/auth/login", authHandler.Login).
		Methods(http.MethodPost, http.MethodOptions)

	usersHandler := handler.NewUsers(r.usersService, r.contextManager, r.logger)
	api.HandleFunc("/users/list", authenticate.Wrap(usersHandler.List)).
		Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/users/register", authenticate.Wrap(usersHandler.Register)).
		Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users/{secretId}", authenticate.Wrap(usersHandler.Delete)).
		Methods(http.MethodDelete, http.MethodOptions)

	profileHandler := handler.NewProfile(r.profileService, r.contextManager, r.logger)
	api.HandleFunc("/profile/public/{publicLinkKey}", profileHandler.GetPublic).
		Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/profile/{userId}", profileHandler.Get).
		Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/profile/{userId}", authenticate.Wrap(profileHandler.Replace)).
		Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/profile/{userId}/photos", authenticate.Wrap(profileHandler.UploadPhoto)).
		Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/photos/{userId}/{photoId}", profileHandler.GetPhoto).
		Methods(http.MethodGet, http.MethodOptions)

	return m
}
