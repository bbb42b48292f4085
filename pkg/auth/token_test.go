package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, expiresAt, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	// compact JWT representation: header.payload.signature
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_ValidateExpired(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, _, err := svc.IssueWithTTL("alice", -1*time.Minute)
	require.NoError(t, err)

	subject, err := svc.Validate(token)
	assert.Empty(t, subject)
	assert.True(t, IsAuthentication(err))
}

func TestTokenService_ValidateWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", 30*time.Minute)
	verifier := NewTokenService("secret-two", 30*time.Minute)

	token, _, err := issuer.Issue("alice")
	require.NoError(t, err)

	subject, err := verifier.Validate(token)
	assert.Empty(t, subject)
	assert.True(t, IsAuthentication(err))
}

func TestTokenService_ValidateTamperedPayload(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, _, err := svc.Issue("alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	// flip one byte of the payload, keep the original signature
	payload[0] ^= 0x01
	parts[1] = base64.RawURLEncoding.EncodeToString(payload)
	tampered := strings.Join(parts, ".")

	subject, err := svc.Validate(tampered)
	assert.Empty(t, subject)
	assert.True(t, IsAuthentication(err))
}

func TestTokenService_ValidateMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "junk segments", token: "aaaa.bbbb.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Validate(tt.token)
			assert.Empty(t, subject)
			assert.True(t, IsAuthentication(err))
		})
	}
}

func TestTokenService_ValidateMissingSubject(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, _, err := svc.Issue("")
	require.NoError(t, err)

	subject, err := svc.Validate(token)
	assert.Empty(t, subject)
	assert.True(t, IsAuthentication(err))
}

func TestTokenService_TTL(t *testing.T) {
	svc := NewTokenService("test-secret", 45*time.Minute)
	assert.Equal(t, 45*time.Minute, svc.TTL())
}
