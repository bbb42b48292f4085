package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user matches the lookup
var ErrNotFound = errors.New("user not found")

// ErrDuplicate is returned when a create would violate the username or
// email uniqueness constraint
var ErrDuplicate = errors.New("username or email already exists")

// Store is the persistence contract for user records.
//
// Create must be atomic with respect to the uniqueness check: two
// concurrent creates racing on the same username or email must resolve
// to exactly one success and one ErrDuplicate.
type Store interface {
	// Create persists a new user with the given identity and password
	// hash. The store assigns ID and CreatedAt. New users are active
	// and not superusers.
	Create(ctx context.Context, username, email, passwordHash string) (*User, error)

	// FindByUsername returns the user with the given username, or
	// ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByUsernameOrEmail returns the user whose username equals the
	// identifier, or whose email equals it if no username matches.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error)

	// List returns users ordered by creation, skipping offset records
	// and returning at most limit.
	List(ctx context.Context, offset, limit int) ([]*User, error)

	// SetActive updates the is_active flag for a user.
	SetActive(ctx context.Context, id int64, active bool) error

	// SetSuperuser updates the is_superuser flag for a user.
	SetSuperuser(ctx context.Context, id int64, superuser bool) error
}
