package users

import "time"

// User represents a registered account.
//
// Username and Email are each globally unique. A record never changes
// after creation except for the IsActive/IsSuperuser flags.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never logged.
	PasswordHash string `json:"-"`
}
