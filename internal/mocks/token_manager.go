package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"personalbook/internal/model"
)

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

// NewTokenManager creates a TokenManager mock bound to t.
func NewTokenManager(t *testing.T) *TokenManager {
	m := &TokenManager{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenManager) Generate(session model.Session) (string, error) {
	args := m.Called(session)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (model.Session, error) {
	args := m.Called(token)
	return args.Get(0).(model.Session), args.Error(1)
}
