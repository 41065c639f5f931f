package notifier

import (
	"context"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

var _ model.Notifier = (*Noop)(nil)

// Noop logs the registration instead of sending email. Used when SES is
// disabled, typically in local development.
type Noop struct {
	logger *logger.Logger
}

// NewNoop creates a Noop notifier.
func NewNoop(logger *logger.Logger) *Noop {
	return &Noop{logger: logger}
}

// Notify logs the would-be email and succeeds.
func (n *Noop) Notify(_ context.Context, email, username, secretID string) error {
	n.logger.Info("Noop notifier: registration email suppressed",
		"email", email,
		"username", username,
		"secret_id", secretID)
	return nil
}
