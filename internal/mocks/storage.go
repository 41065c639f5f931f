package mocks

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"personalbook/internal/model"
)

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

// NewStorage creates a Storage mock bound to t.
func NewStorage(t *testing.T) *Storage {
	m := &Storage{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Storage) Upload(ctx context.Context, key, contentType string, reader io.Reader, size int64) error {
	args := m.Called(ctx, key, contentType, reader, size)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, model.Object, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.Object), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(model.Object), args.Error(2)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
