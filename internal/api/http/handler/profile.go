package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// ProfileService defines profile document and photo operations.
type ProfileService interface {
	Get(ctx context.Context, userID string) (model.Profile, error)
	Replace(ctx context.Context, session model.Session, userID string, doc model.Profile) (model.Profile, error)
	GetPublic(ctx context.Context, publicLinkKey string) (model.PublicProfile, error)
	AttachPhoto(ctx context.Context, session model.Session, userID, contentType string, data io.Reader, size int64) (model.Photo, error)
	GetPhoto(ctx context.Context, userID, photoID string) (io.ReadCloser, model.Object, error)
}

// Profile handles the profile endpoints.
type Profile struct {
	profileService ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(profileService ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Get returns a profile by its owner's secret id. Unauthenticated by
// design: the id itself is the access credential for this read path.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

// Replace overwrites the stored profile document wholesale.
func (h *Profile) Replace(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	userID := mux.Vars(r)["userId"]

	var doc model.Profile
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	saved, err := h.profileService.Replace(r.Context(), session, userID, doc)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, saved)
}

// GetPublic resolves a public share key to the owner's name and profile.
func (h *Profile) GetPublic(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["publicLinkKey"]

	public, err := h.profileService.GetPublic(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, public)
}

// UploadPhoto stores an image for the profile and returns its URL.
func (h *Profile) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, model.ErrUnauthenticated)
		return
	}

	userID := mux.Vars(r)["userId"]
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	photo, err := h.profileService.AttachPhoto(r.Context(), session, userID, contentType, r.Body, r.ContentLength)
	if err != nil {
		h.logger.Error("Profile handler: photo upload failed",
			"user_id", userID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, photo)
}

// GetPhoto streams a stored profile photo.
func (h *Profile) GetPhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, photoID := vars["userId"], vars["photoId"]

	reader, info, err := h.profileService.GetPhoto(r.Context(), userID, photoID)
	if err != nil {
		WriteError(w, err)
		return
	}
	defer reader.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Profile handler: photo streaming failed",
			"user_id", userID,
			"photo_id", photoID,
			"error", err.Error())
	}
}
