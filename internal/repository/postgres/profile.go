package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"personalbook/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

// ProfileRepository persists profile documents.
//
// The mutable sections are stored as a single jsonb column; user_id and
// public_link_key live in their own columns so they stay immutable and
// indexable regardless of what a replace writes.
type ProfileRepository struct {
	db *Connection
}

// NewProfileRepository creates a ProfileRepository on the given connection.
func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// GetByUserID returns the profile owned by the account with userID.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (model.Profile, error) {
	query := `SELECT user_id, public_link_key, document FROM profiles WHERE user_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return profile, nil
}

// GetByPublicLinkKey returns the profile exposed under the given share key.
func (r *ProfileRepository) GetByPublicLinkKey(ctx context.Context, key string) (model.Profile, error) {
	query := `SELECT user_id, public_link_key, document FROM profiles WHERE public_link_key = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by public link key: %w", err)
	}

	return profile, nil
}

// Replace overwrites the stored document of profile.UserID wholesale.
// user_id and public_link_key are never touched.
func (r *ProfileRepository) Replace(ctx context.Context, profile model.Profile) (model.Profile, error) {
	doc, err := marshalDocument(profile)
	if err != nil {
		return model.Profile{}, err
	}

	query := `UPDATE profiles SET document = $2 WHERE user_id = $1
			  RETURNING user_id, public_link_key, document`

	saved, err := scanProfile(r.db.QueryRow(ctx, query, profile.UserID, doc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to replace profile: %w", err)
	}

	return saved, nil
}

func insertProfile(ctx context.Context, q querier, profile model.Profile) error {
	doc, err := marshalDocument(profile)
	if err != nil {
		return err
	}

	query := `INSERT INTO profiles (user_id, public_link_key, document) VALUES ($1, $2, $3)`
	if _, err := q.Exec(ctx, query, profile.UserID, profile.PublicLinkKey, doc); err != nil {
		return err
	}

	return nil
}

// marshalDocument serializes the mutable sections, excluding the key columns.
func marshalDocument(profile model.Profile) ([]byte, error) {
	profile.UserID = ""
	profile.PublicLinkKey = ""
	doc, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile document: %w", err)
	}
	return doc, nil
}

func scanProfile(row pgx.Row) (model.Profile, error) {
	var (
		userID string
		key    string
		doc    []byte
	)
	if err := row.Scan(&userID, &key, &doc); err != nil {
		return model.Profile{}, err
	}

	var profile model.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return model.Profile{}, fmt.Errorf("failed to unmarshal profile document: %w", err)
	}
	profile.UserID = userID
	profile.PublicLinkKey = key

	return profile, nil
}
