// Package users provides the persisted credential store.
//
// A User record carries the account identity (username, email), the
// bcrypt password hash, and the is_active/is_superuser status flags.
// The Store interface abstracts persistence; PostgresStore is the
// production implementation on database/sql with lib/pq.
//
// Uniqueness of username and email is enforced by database-level unique
// indexes, so concurrent registrations racing on the same identity
// resolve atomically: one create succeeds, the other observes
// ErrDuplicate.
package users
