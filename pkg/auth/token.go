package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates signed access tokens.
//
// Tokens are compact JWTs signed with HMAC-SHA-256 using a process-wide
// secret. Validation is stateless: a token is valid if and only if its
// signature verifies against the current secret, it has not expired,
// and it carries a subject claim. There is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret
// and default token lifetime
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured default token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token for the subject using the default TTL.
// It returns the compact token string and its expiry time.
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL creates a signed token for the subject expiring after
// the given duration
func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, &AuthenticationError{Message: "could not issue token"}
	}

	return signed, expiresAt, nil
}

// Validate verifies the token's signature and expiry and returns its
// subject. Validation is all-or-nothing: any failure (bad signature,
// malformed token, expiry, missing subject, unexpected algorithm)
// yields an AuthenticationError and no partial result.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", &AuthenticationError{Message: "invalid or expired token"}
	}
	if claims.Subject == "" {
		return "", &AuthenticationError{Message: "invalid or expired token"}
	}

	return claims.Subject, nil
}
