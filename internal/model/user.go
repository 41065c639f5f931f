package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the single master admin from regular users.
type Role string

const (
	// RoleMaster is the administrative account able to manage users.
	RoleMaster Role = "master"
	// RoleUser is a regular account identified by a secret id.
	RoleUser Role = "user"
)

// MasterSecretID is the sentinel secret id of the master account.
const MasterSecretID = "MASTER"

// UserStore defines persistence operations for accounts.
//
// CreateWithProfile and DeleteWithProfile touch both the account and its
// profile and must be atomic: either both rows change or neither does.
type UserStore interface {
	GetMaster(ctx context.Context) (User, error)
	GetMasterByEmail(ctx context.Context, email string) (User, error)
	GetUserByEmailAndSecretID(ctx context.Context, email, secretID string) (User, error)
	GetBySecretID(ctx context.Context, secretID string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	CreateWithProfile(ctx context.Context, user User, profile Profile, beforeCommit func(ctx context.Context) error) (User, error)
	DeleteWithProfile(ctx context.Context, secretID string) error
}

// User represents a stored account.
//
// Password holds a bcrypt hash and is only set for the master account;
// regular users authenticate with their secret id instead.
type User struct {
	ID           uuid.UUID `json:"-"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	SecretID     string    `json:"secretId"`
	Role         Role      `json:"role"`
	RegisteredAt time.Time `json:"-"`
}

// Summary is the account view returned to the master on the user list.
type Summary struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	SecretID     string `json:"secretId"`
	Role         Role   `json:"role"`
	RegisteredAt string `json:"registeredAt"`
}

// Summary renders the account for list and registration responses.
// RegisteredAt is a display string, matching what clients already parse.
func (u User) Summary() Summary {
	return Summary{
		Username:     u.Username,
		Email:        u.Email,
		SecretID:     u.SecretID,
		Role:         u.Role,
		RegisteredAt: u.RegisteredAt.Format("1/2/2006, 3:04:05 PM"),
	}
}
