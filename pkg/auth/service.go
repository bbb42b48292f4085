package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/userhub-io/userhub/pkg/observability"
	"github.com/userhub-io/userhub/pkg/users"
)

const (
	// MinUsernameLength is the minimum accepted username length
	MinUsernameLength = 3

	// MaxUsernameLength is the maximum accepted username length
	MaxUsernameLength = 50
)

// credentialsMessage is the uniform login failure message. Unknown
// identifiers and wrong passwords must be indistinguishable to the
// caller.
const credentialsMessage = "incorrect username or password"

// Service orchestrates registration, login, and request authorization
// against the credential store, password hasher, and token service
type Service struct {
	store  users.Store
	hasher *PasswordHasher
	tokens *TokenService
	logger *observability.Logger
}

// NewService creates the auth service
func NewService(store users.Store, hasher *PasswordHasher, tokens *TokenService, logger *observability.Logger) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Tokens returns the underlying token service
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register creates a new user. If username is empty the email is used
// as the username. The password is validated and hashed before the
// record is persisted; a duplicate username or email yields a
// ConflictError.
func (s *Service) Register(ctx context.Context, username, email, password string) (*users.User, error) {
	if username == "" {
		username = email
	}

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, users.ErrDuplicate) {
			return nil, &ConflictError{Message: "username or email already registered"}
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.WithField("username", user.Username).Info("user registered")
	return user, nil
}

// Login verifies the credentials and issues an access token whose
// subject is the record's username. Both the unknown-identifier and
// wrong-password paths return the same AuthenticationError.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, time.Time, error) {
	user, err := s.store.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.logger.Debug("login failed: unknown identifier")
			return "", time.Time{}, &AuthenticationError{Message: credentialsMessage}
		}
		return "", time.Time{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.WithField("username", user.Username).Debug("login failed: password mismatch")
		return "", time.Time{}, &AuthenticationError{Message: credentialsMessage}
	}

	token, expiresAt, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", time.Time{}, err
	}

	s.logger.WithField("username", user.Username).Info("user logged in")
	return token, expiresAt, nil
}

// Authorize validates the token and resolves its subject to a user
// record. Token failures and unresolvable subjects both yield an
// AuthenticationError.
func (s *Service) Authorize(ctx context.Context, tokenString string) (*users.User, error) {
	subject, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.store.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, &AuthenticationError{Message: "could not validate credentials"}
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user, nil
}

// AuthorizeActive is Authorize plus an is_active check
func (s *Service) AuthorizeActive(ctx context.Context, tokenString string) (*users.User, error) {
	user, err := s.Authorize(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, &InactiveUserError{Username: user.Username}
	}
	return user, nil
}

// RequireSuperuser fails with ForbiddenError unless the user is a
// superuser
func (s *Service) RequireSuperuser(user *users.User) error {
	if user == nil || !user.IsSuperuser {
		return &ForbiddenError{Message: "not authorized to perform this operation"}
	}
	return nil
}

// ListUsers returns a page of users in creation order. Restricted to
// superusers.
func (s *Service) ListUsers(ctx context.Context, caller *users.User, skip, limit int) ([]*users.User, error) {
	if err := s.RequireSuperuser(caller); err != nil {
		return nil, err
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.store.List(ctx, skip, limit)
}

// validateEmail checks email syntax
func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

// validateUsername checks the username length bounds
func validateUsername(username string) error {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("length must be between %d and %d characters", MinUsernameLength, MaxUsernameLength),
		}
	}
	return nil
}
