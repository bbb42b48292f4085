package auth

import (
	"errors"
	"fmt"
)

// ConflictError indicates a registration collided with an existing
// username or email
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// AuthenticationError indicates bad credentials or an invalid, expired,
// or unresolvable token. The message is uniform across failure causes
// so callers cannot distinguish "unknown user" from "wrong password".
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// IsAuthentication reports whether err is an AuthenticationError
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// InactiveUserError indicates the authenticated account is deactivated
type InactiveUserError struct {
	Username string
}

func (e *InactiveUserError) Error() string {
	return "inactive user"
}

// IsInactiveUser reports whether err is an InactiveUserError
func IsInactiveUser(err error) bool {
	var ie *InactiveUserError
	return errors.As(err, &ie)
}

// ForbiddenError indicates the caller lacks the privilege for an
// operation
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// IsForbidden reports whether err is a ForbiddenError
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

// ValidationError indicates malformed input rejected before reaching
// the store or hasher
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
