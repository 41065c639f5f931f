package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"personalbook/internal/model"
)

// ProfileStore is a mock of model.ProfileStore.
type ProfileStore struct {
	mock.Mock
}

// NewProfileStore creates a ProfileStore mock bound to t.
func NewProfileStore(t *testing.T) *ProfileStore {
	m := &ProfileStore{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProfileStore) GetByUserID(ctx context.Context, userID string) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileStore) GetByPublicLinkKey(ctx context.Context, key string) (model.Profile, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileStore) Replace(ctx context.Context, profile model.Profile) (model.Profile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(model.Profile), args.Error(1)
}
