package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"personalbook/internal/logger"
	"personalbook/internal/model"
)

// Profile mediates reads and writes of profile documents, enforcing the
// master-or-owner rule on mutations.
type Profile struct {
	profileStore model.ProfileStore
	userStore    model.UserStore
	storage      model.Storage
	logger       *logger.Logger
}

// NewProfile creates the profile service.
func NewProfile(
	profileStore model.ProfileStore,
	userStore model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		profileStore: profileStore,
		userStore:    userStore,
		storage:      storage,
		logger:       logger,
	}
}

// Get returns the profile keyed by userID. Deliberately unauthenticated:
// anyone who knows a secret id can read that profile, matching the existing
// API contract.
func (s *Profile) Get(ctx context.Context, userID string) (model.Profile, error) {
	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// Replace overwrites the profile document of userID wholesale. Sections
// omitted by the caller are cleared, not merged. Master or owner only.
func (s *Profile) Replace(ctx context.Context, session model.Session, userID string, doc model.Profile) (model.Profile, error) {
	if !session.CanManage(userID) {
		return model.Profile{}, model.ErrForbidden
	}

	doc.UserID = userID
	doc.NormalizeItemIDs()

	saved, err := s.profileStore.Replace(ctx, doc)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to replace profile: %w", err)
	}

	s.logger.Info("Profile service: profile replaced", "user_id", userID)

	return saved, nil
}

// GetPublic resolves a public share key to the owner's display name and the
// sanitized profile. The response never carries the email or secret id.
func (s *Profile) GetPublic(ctx context.Context, publicLinkKey string) (model.PublicProfile, error) {
	profile, err := s.profileStore.GetByPublicLinkKey(ctx, publicLinkKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PublicProfile{}, model.ErrNotFound
		}
		return model.PublicProfile{}, fmt.Errorf("failed to get profile by public link key: %w", err)
	}

	user, err := s.userStore.GetBySecretID(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PublicProfile{}, model.ErrNotFound
		}
		return model.PublicProfile{}, fmt.Errorf("failed to get profile owner: %w", err)
	}

	return model.PublicProfile{
		Username: user.Username,
		Profile:  profile.Public(),
	}, nil
}

// AttachPhoto stores an uploaded image for userID's profile and returns the
// URL to embed. Master or owner only.
func (s *Profile) AttachPhoto(ctx context.Context, session model.Session, userID, contentType string, data io.Reader, size int64) (model.Photo, error) {
	if !session.CanManage(userID) {
		return model.Photo{}, model.ErrForbidden
	}

	if _, err := s.profileStore.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Photo{}, model.ErrNotFound
		}
		return model.Photo{}, fmt.Errorf("failed to get profile: %w", err)
	}

	id := uuid.NewString()
	key := userID + "/" + id
	if err := s.storage.Upload(ctx, key, contentType, data, size); err != nil {
		return model.Photo{}, fmt.Errorf("%w: photo upload: %v", model.ErrDependencyFailure, err)
	}

	s.logger.Info("Profile service: photo attached", "user_id", userID, "photo_id", id)

	return model.Photo{
		ID:  id,
		URL: "/api/photos/" + userID + "/" + id,
	}, nil
}

// GetPhoto streams a stored profile photo. Unauthenticated, like the public
// profile views that embed these URLs.
func (s *Profile) GetPhoto(ctx context.Context, userID, photoID string) (io.ReadCloser, model.Object, error) {
	key := userID + "/" + photoID

	reader, info, err := s.storage.Download(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.Object{}, model.ErrNotFound
	}
	if err != nil {
		return nil, model.Object{}, fmt.Errorf("%w: photo download: %v", model.ErrDependencyFailure, err)
	}

	return reader, info, nil
}
