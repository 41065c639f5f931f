package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Notifier is a mock of model.Notifier.
type Notifier struct {
	mock.Mock
}

// NewNotifier creates a Notifier mock bound to t.
func NewNotifier(t *testing.T) *Notifier {
	m := &Notifier{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) Notify(ctx context.Context, email, username, secretID string) error {
	args := m.Called(ctx, email, username, secretID)
	return args.Error(0)
}
