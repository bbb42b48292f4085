package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// PostgresStore implements the Store interface using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgresStore and ensures the users
// table exists
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	store := &PostgresStore{db: db}

	if err := store.ensureTable(); err != nil {
		return nil, fmt.Errorf("failed to ensure users table: %w", err)
	}

	return store, nil
}

// ensureTable creates the users table if it doesn't exist.
// The unique indexes on username and email are what serialize racing
// registrations; the store never does a check-then-insert.
func (s *PostgresStore) ensureTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		is_superuser BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`

	_, err := s.db.Exec(query)
	return err
}

// Create inserts a new user and returns the persisted record
func (s *PostgresStore) Create(ctx context.Context, username, email, passwordHash string) (*User, error) {
	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	query := `
		INSERT INTO users (username, email, password_hash, is_active, is_superuser)
		VALUES ($1, $2, $3, true, false)
		RETURNING id, created_at
	`
	err := s.db.QueryRowContext(ctx, query, username, email, passwordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByUsername retrieves a user by username
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, is_active, is_superuser, created_at
		FROM users
		WHERE username = $1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, username))
}

// FindByUsernameOrEmail retrieves a user matching the identifier on
// either field, preferring a username match
func (s *PostgresStore) FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, is_active, is_superuser, created_at
		FROM users
		WHERE username = $1 OR email = $1
		ORDER BY (username = $1) DESC
		LIMIT 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, identifier))
}

// List retrieves users in creation order with offset/limit pagination
func (s *PostgresStore) List(ctx context.Context, offset, limit int) ([]*User, error) {
	query := `
		SELECT id, username, email, password_hash, is_active, is_superuser, created_at
		FROM users
		ORDER BY id
		OFFSET $1 LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	result := make([]*User, 0)
	for rows.Next() {
		user := &User{}
		err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.IsActive, &user.IsSuperuser, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return result, nil
}

// SetActive updates the is_active flag
func (s *PostgresStore) SetActive(ctx context.Context, id int64, active bool) error {
	return s.setFlag(ctx, "is_active", id, active)
}

// SetSuperuser updates the is_superuser flag
func (s *PostgresStore) SetSuperuser(ctx context.Context, id int64, superuser bool) error {
	return s.setFlag(ctx, "is_superuser", id, superuser)
}

func (s *PostgresStore) setFlag(ctx context.Context, column string, id int64, value bool) error {
	// column is one of the two fixed flag names, never user input
	query := fmt.Sprintf("UPDATE users SET %s = $1 WHERE id = $2", column)
	res, err := s.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) scanOne(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.IsSuperuser, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
