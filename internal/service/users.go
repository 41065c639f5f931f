package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// maxSecretIDAttempts bounds regeneration when a fresh secret id collides
// with an existing account.
const maxSecretIDAttempts = 5

// Users implements the master-only account management operations.
type Users struct {
	userStore model.UserStore
	notifier  model.Notifier
	logger    *logger.Logger
}

// NewUsers creates the users service.
func NewUsers(userStore model.UserStore, notifier model.Notifier, logger *logger.Logger) *Users {
	return &Users{
		userStore: userStore,
		notifier:  notifier,
		logger:    logger,
	}
}

// List returns all regular accounts. Master only.
func (s *Users) List(ctx context.Context, session model.Session) ([]model.Summary, error) {
	if !session.IsMaster() {
		return nil, model.ErrForbidden
	}

	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]model.Summary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}

	return summaries, nil
}

// Register creates a regular account with a fresh 6-digit secret id, its
// default profile and sends the registration notification. Master only.
//
// The account, the profile and the notification succeed or fail together:
// the notifier runs inside the registration transaction and a failure rolls
// everything back, so no orphaned rows survive any path.
func (s *Users) Register(ctx context.Context, session model.Session, username, email string) (model.Summary, error) {
	if !session.IsMaster() {
		return model.Summary{}, model.ErrForbidden
	}

	for attempt := 0; attempt < maxSecretIDAttempts; attempt++ {
		secretID, err := generateSecretID()
		if err != nil {
			return model.Summary{}, fmt.Errorf("failed to generate secret id: %w", err)
		}

		user := model.User{
			ID:           uuid.New(),
			Username:     username,
			Email:        email,
			SecretID:     secretID,
			Role:         model.RoleUser,
			RegisteredAt: time.Now(),
		}
		profile := model.NewDefaultProfile(secretID, username, uuid.NewString())

		saved, err := s.userStore.CreateWithProfile(ctx, user, profile, func(ctx context.Context) error {
			if err := s.notifier.Notify(ctx, email, username, secretID); err != nil {
				s.logger.Error("Users service: registration notification failed",
					"email", email,
					"error", err.Error())
				return fmt.Errorf("%w: registration notification: %v", model.ErrDependencyFailure, err)
			}
			return nil
		})
		if errors.Is(err, model.ErrDuplicateSecretID) {
			s.logger.Info("Users service: secret id collision, regenerating",
				"attempt", attempt+1)
			continue
		}
		if err != nil {
			return model.Summary{}, err
		}

		s.logger.Info("Users service: user registered",
			"email", email,
			"secret_id", secretID)

		return saved.Summary(), nil
	}

	return model.Summary{}, fmt.Errorf("failed to find a free secret id after %d attempts: %w",
		maxSecretIDAttempts, model.ErrDuplicateSecretID)
}

// Delete removes the account with secretID and its profile. Master only.
func (s *Users) Delete(ctx context.Context, session model.Session, secretID string) error {
	if !session.IsMaster() {
		return model.ErrForbidden
	}

	if err := s.userStore.DeleteWithProfile(ctx, secretID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("Users service: user deleted", "secret_id", secretID)

	return nil
}

// generateSecretID draws a uniform 6-digit id from [100000, 999999].
func generateSecretID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
