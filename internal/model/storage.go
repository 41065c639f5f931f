package model

import (
	"context"
	"io"
)

// Object describes a stored photo object.
type Object struct {
	ContentType string
	Size        int64
}

// Photo is the handle returned after a photo upload. URL is relative to the
// API root and can be embedded in any profile image field.
type Photo struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Storage persists profile photos in an object store. Download reports a
// missing key as ErrNotFound.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, reader io.Reader, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, Object, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
