package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"personalbook/internal/mocks"
	"personalbook/internal/model"
	"personalbook/internal/testutil"
)

func postLogin(t *testing.T, h *Auth, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestAuth_Login_UserSuccess(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, model.LoginRequest{
		Type:     "user",
		Email:    "alice@example.com",
		SecretID: "123456",
	}).Return(model.LoginResult{
		Token:    "signed-token",
		Role:     model.RoleUser,
		Username: "Alice",
		ID:       "123456",
	}, nil)

	h := NewAuth(svc, lg)
	rec := postLogin(t, h, model.LoginRequest{Type: "user", Email: "alice@example.com", SecretID: "123456"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var res model.LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, "123456", res.ID)
}

func TestAuth_Login_UserInvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, mock.Anything).Return(model.LoginResult{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, lg)
	rec := postLogin(t, h, model.LoginRequest{Type: "user", Email: "alice@example.com", SecretID: "000000"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Email or User ID")
}

func TestAuth_Login_MasterInvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, mock.Anything).Return(model.LoginResult{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, lg)
	rec := postLogin(t, h, model.LoginRequest{Type: "master", Email: "admin@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Admin Credentials")
}

func TestAuth_Login_BadBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	NewAuth(svc, lg).Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuth_Login_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, mock.Anything).Return(model.LoginResult{}, assert.AnError)

	h := NewAuth(svc, lg)
	rec := postLogin(t, h, model.LoginRequest{Type: "user", Email: "alice@example.com", SecretID: "123456"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
