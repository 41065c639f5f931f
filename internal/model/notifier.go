package model

import "context"

// Notifier delivers the registration notification to a new user.
//
// It is invoked before the registration transaction commits; returning an
// error aborts the registration and rolls back the created account and
// profile.
type Notifier interface {
	Notify(ctx context.Context, email, username, secretID string) error
}
