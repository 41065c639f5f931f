package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"personalbook/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists accounts and the account+profile pairs.
type UserRepository struct {
	db *Connection
}

// NewUserRepository creates a UserRepository on the given connection.
func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, username, email, password, secret_id, role, registered_at`

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.SecretID, &user.Role, &user.RegisteredAt,
	)
	return user, err
}

// GetMaster returns the master account if it has been seeded.
func (r *UserRepository) GetMaster(ctx context.Context) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'master' LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get master account: %w", err)
	}

	return user, nil
}

// GetMasterByEmail returns the master account matching email.
func (r *UserRepository) GetMasterByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND role = 'master'`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get master by email: %w", err)
	}

	return user, nil
}

// GetUserByEmailAndSecretID returns the regular account matching both
// credentials exactly.
func (r *UserRepository) GetUserByEmailAndSecretID(ctx context.Context, email, secretID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND secret_id = $2 AND role = 'user'`

	user, err := scanUser(r.db.QueryRow(ctx, query, email, secretID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email and secret id: %w", err)
	}

	return user, nil
}

// GetBySecretID returns the account with the given secret id.
func (r *UserRepository) GetBySecretID(ctx context.Context, secretID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE secret_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, secretID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by secret id: %w", err)
	}

	return user, nil
}

// List returns all regular accounts in registration order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'user' ORDER BY registered_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Create inserts a single account. Used for seeding the master; regular
// users are created through CreateWithProfile.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	saved, err := insertUser(ctx, r.db, user)
	if err != nil {
		return model.User{}, mapConstraintError(err, "failed to create user")
	}
	return saved, nil
}

// CreateWithProfile inserts the account and its profile in one transaction.
// beforeCommit, when non-nil, runs after both inserts; its failure rolls the
// whole registration back.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user model.User, profile model.Profile, beforeCommit func(ctx context.Context) error) (model.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	saved, err := insertUser(ctx, tx, user)
	if err != nil {
		return model.User{}, mapConstraintError(err, "failed to create user")
	}

	if err := insertProfile(ctx, tx, profile); err != nil {
		return model.User{}, mapConstraintError(err, "failed to create profile")
	}

	if beforeCommit != nil {
		if err := beforeCommit(ctx); err != nil {
			return model.User{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.User{}, fmt.Errorf("failed to commit registration: %w", err)
	}

	return saved, nil
}

// DeleteWithProfile removes the account and its profile in one transaction.
func (r *UserRepository) DeleteWithProfile(ctx context.Context, secretID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, secretID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM users WHERE secret_id = $1 AND role = 'user'`, secretID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit deletion: %w", err)
	}

	return nil
}

func insertUser(ctx context.Context, q querier, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, email, password, secret_id, role, registered_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.Password,
		user.SecretID, user.Role, user.RegisteredAt,
	))
}

// mapConstraintError turns postgres unique violations into domain errors.
func mapConstraintError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return model.ErrDuplicateEmail
		case "users_secret_id_key":
			return model.ErrDuplicateSecretID
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
