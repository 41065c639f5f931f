package mocks

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"personalbook/internal/model"
)

// AuthService is a mock of the handler-side login service.
type AuthService struct {
	mock.Mock
}

// NewAuthService creates an AuthService mock bound to t.
func NewAuthService(t *testing.T) *AuthService {
	m := &AuthService{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.LoginResult), args.Error(1)
}

// UsersService is a mock of the handler-side account management service.
type UsersService struct {
	mock.Mock
}

// NewUsersService creates a UsersService mock bound to t.
func NewUsersService(t *testing.T) *UsersService {
	m := &UsersService{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UsersService) List(ctx context.Context, session model.Session) ([]model.Summary, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Summary), args.Error(1)
}

func (m *UsersService) Register(ctx context.Context, session model.Session, username, email string) (model.Summary, error) {
	args := m.Called(ctx, session, username, email)
	return args.Get(0).(model.Summary), args.Error(1)
}

func (m *UsersService) Delete(ctx context.Context, session model.Session, secretID string) error {
	args := m.Called(ctx, session, secretID)
	return args.Error(0)
}

// ProfileService is a mock of the handler-side profile service.
type ProfileService struct {
	mock.Mock
}

// NewProfileService creates a ProfileService mock bound to t.
func NewProfileService(t *testing.T) *ProfileService {
	m := &ProfileService{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProfileService) Get(ctx context.Context, userID string) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileService) Replace(ctx context.Context, session model.Session, userID string, doc model.Profile) (model.Profile, error) {
	args := m.Called(ctx, session, userID, doc)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileService) GetPublic(ctx context.Context, publicLinkKey string) (model.PublicProfile, error) {
	args := m.Called(ctx, publicLinkKey)
	return args.Get(0).(model.PublicProfile), args.Error(1)
}

func (m *ProfileService) AttachPhoto(ctx context.Context, session model.Session, userID, contentType string, data io.Reader, size int64) (model.Photo, error) {
	args := m.Called(ctx, session, userID, contentType, data, size)
	return args.Get(0).(model.Photo), args.Error(1)
}

func (m *ProfileService) GetPhoto(ctx context.Context, userID, photoID string) (io.ReadCloser, model.Object, error) {
	args := m.Called(ctx, userID, photoID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.Object), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(model.Object), args.Error(2)
}
