// Package mocks holds testify mocks for the interfaces exercised in unit
// tests. Every constructor registers AssertExpectations as a test cleanup.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"personalbook/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

// NewUserStore creates a UserStore mock bound to t.
func NewUserStore(t *testing.T) *UserStore {
	m := &UserStore{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserStore) GetMaster(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetMasterByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetUserByEmailAndSecretID(ctx context.Context, email, secretID string) (model.User, error) {
	args := m.Called(ctx, email, secretID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetBySecretID(ctx context.Context, secretID string) (model.User, error) {
	args := m.Called(ctx, secretID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) CreateWithProfile(ctx context.Context, user model.User, profile model.Profile, beforeCommit func(ctx context.Context) error) (model.User, error) {
	args := m.Called(ctx, user, profile, beforeCommit)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) DeleteWithProfile(ctx context.Context, secretID string) error {
	args := m.Called(ctx, secretID)
	return args.Error(0)
}
