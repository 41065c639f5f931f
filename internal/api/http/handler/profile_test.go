package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "personalbook/internal/api/http/context"
	"personalbook/internal/mocks"
	"personalbook/internal/model"
	"personalbook/internal/testutil"
)

func TestProfile_Get_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	svc.On("Get", mock.Anything, "123456").Return(model.NewDefaultProfile("123456", "Alice", "key-1"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile/123456", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "123456"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var p model.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "123456", p.UserID)
	assert.Equal(t, model.DefaultAboutBio, p.About.Bio)
}

func TestProfile_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	svc.On("Get", mock.Anything, "999999").Return(model.Profile{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/profile/999999", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "999999"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_Replace_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	session := model.Session{Role: model.RoleUser, ID: "123456"}
	svc.On("Replace", mock.Anything, session, "123456", mock.MatchedBy(func(p model.Profile) bool {
		return p.About.Bio == "updated"
	})).Return(model.Profile{UserID: "123456", About: model.About{Bio: "updated"}}, nil)

	body := strings.NewReader(`{"about": {"bio": "updated"}}`)
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/profile/123456", body), ctxMgr, session)
	req = mux.SetURLVars(req, map[string]string{"userId": "123456"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).Replace(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "updated")
}

func TestProfile_Replace_Forbidden(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	session := model.Session{Role: model.RoleUser, ID: "123456"}
	svc.On("Replace", mock.Anything, session, "654321", mock.Anything).
		Return(model.Profile{}, model.ErrForbidden)

	body := strings.NewReader(`{"about": {"bio": "sneaky"}}`)
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/profile/654321", body), ctxMgr, session)
	req = mux.SetURLVars(req, map[string]string{"userId": "654321"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).Replace(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfile_Replace_NoSession(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	body := strings.NewReader(`{"about": {"bio": "updated"}}`)
	req := httptest.NewRequest(http.MethodPut, "/api/profile/123456", body)
	req = mux.SetURLVars(req, map[string]string{"userId": "123456"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).Replace(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfile_Replace_BadBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	session := model.Session{Role: model.RoleUser, ID: "123456"}
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/profile/123456", strings.NewReader("{oops")), ctxMgr, session)
	req = mux.SetURLVars(req, map[string]string{"userId": "123456"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).Replace(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfile_GetPublic_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	pub := model.PublicProfile{
		Username: "Alice",
		Profile:  model.NewDefaultProfile("123456", "Alice", "key-1").Public(),
	}
	svc.On("GetPublic", mock.Anything, "key-1").Return(pub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile/public/key-1", nil)
	req = mux.SetURLVars(req, map[string]string{"publicLinkKey": "key-1"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).GetPublic(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"Alice"`)
	assert.NotContains(t, rec.Body.String(), `"userId"`)
}

func TestProfile_GetPublic_UnknownKey(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	svc.On("GetPublic", mock.Anything, "missing").Return(model.PublicProfile{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/profile/public/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"publicLinkKey": "missing"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).GetPublic(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_UploadPhoto_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	session := model.Session{Role: model.RoleUser, ID: "123456"}
	svc.On("AttachPhoto", mock.Anything, session, "123456", "image/png", mock.Anything, int64(4)).
		Return(model.Photo{ID: "photo-1", URL: "/api/photos/123456/photo-1"}, nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/profile/123456/photos", bytes.NewReader([]byte("data"))), ctxMgr, session)
	req.Header.Set("Content-Type", "image/png")
	req = mux.SetURLVars(req, map[string]string{"userId": "123456"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).UploadPhoto(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/photos/123456/photo-1")
}

func TestProfile_GetPhoto_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	svc.On("GetPhoto", mock.Anything, "123456", "photo-1").
		Return(io.NopCloser(bytes.NewReader([]byte("png-bytes"))), model.Object{ContentType: "image/png", Size: 9}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/photos/123456/photo-1", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "123456", "photoId": "photo-1"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).GetPhoto(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestProfile_GetPhoto_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProfileService(t)
	ctxMgr := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	svc.On("GetPhoto", mock.Anything, "123456", "missing").
		Return(nil, model.Object{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/photos/123456/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "123456", "photoId": "missing"})
	rec := httptest.NewRecorder()

	NewProfile(svc, ctxMgr, lg).GetPhoto(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
