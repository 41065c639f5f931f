package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// MasterSeed holds the initial master admin credentials.
type MasterSeed struct {
	Email    string
	Password string
	Username string
}

// Auth issues session tokens for both roles and seeds the master account.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates the auth service.
func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Login verifies the discriminated credentials and issues a session token.
// Failed lookups and password mismatches both surface as
// model.ErrInvalidCredentials so the response does not reveal which part was
// wrong.
func (a *Auth) Login(ctx context.Context, req model.LoginRequest) (model.LoginResult, error) {
	switch req.Type {
	case string(model.RoleMaster):
		return a.loginMaster(ctx, req)
	default:
		return a.loginUser(ctx, req)
	}
}

func (a *Auth) loginMaster(ctx context.Context, req model.LoginRequest) (model.LoginResult, error) {
	user, err := a.userStore.GetMasterByEmail(ctx, req.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to get master by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		a.logger.Info("Auth service: master password mismatch", "email", req.Email)
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	session := model.Session{
		Role:     model.RoleMaster,
		ID:       user.ID.String(),
		Username: user.Username,
	}
	token, err := a.tokenManager.Generate(session)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: master logged in", "email", req.Email)

	return model.LoginResult{
		Token:    token,
		Role:     model.RoleMaster,
		Username: user.Username,
	}, nil
}

func (a *Auth) loginUser(ctx context.Context, req model.LoginRequest) (model.LoginResult, error) {
	user, err := a.userStore.GetUserByEmailAndSecretID(ctx, req.Email, req.SecretID)
	if errors.Is(err, model.ErrNotFound) {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	session := model.Session{
		Role:     model.RoleUser,
		ID:       user.SecretID,
		Username: user.Username,
	}
	token, err := a.tokenManager.Generate(session)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "secret_id", user.SecretID)

	return model.LoginResult{
		Token:    token,
		Role:     model.RoleUser,
		Username: user.Username,
		ID:       user.SecretID,
	}, nil
}

// EnsureMaster seeds the master admin account on first startup. Existing
// installations are left untouched, so the password can only be changed by
// editing the database directly.
func (a *Auth) EnsureMaster(ctx context.Context, seed MasterSeed) error {
	_, err := a.userStore.GetMaster(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to check for master account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash master password: %w", err)
	}

	master := model.User{
		ID:           uuid.New(),
		Username:     seed.Username,
		Email:        seed.Email,
		Password:     string(hash),
		SecretID:     model.MasterSecretID,
		Role:         model.RoleMaster,
		RegisteredAt: time.Now(),
	}

	if _, err := a.userStore.Create(ctx, master); err != nil {
		return fmt.Errorf("failed to create master account: %w", err)
	}

	a.logger.Info("Auth service: master admin created", "email", seed.Email)

	return nil
}
