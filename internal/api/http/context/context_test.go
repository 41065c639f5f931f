package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalbook/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager()
	session := model.Session{Role: model.RoleUser, ID: "123456", Username: "Alice"}

	ctx := m.SetSessionToContext(context.Background(), session)
	got, ok := m.GetSessionFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestManager_MissingSession(t *testing.T) {
	t.Parallel()

	m := NewManager()
	_, ok := m.GetSessionFromContext(context.Background())
	assert.False(t, ok)
}
