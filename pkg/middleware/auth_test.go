package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub-io/userhub/pkg/auth"
	"github.com/userhub-io/userhub/pkg/observability"
	"github.com/userhub-io/userhub/pkg/users"
)

// stubStore serves a fixed set of users keyed by username
type stubStore struct {
	byUsername map[string]*users.User
}

func (s *stubStore) Create(ctx context.Context, username, email, passwordHash string) (*users.User, error) {
	return nil, users.ErrDuplicate
}

func (s *stubStore) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	if u, ok := s.byUsername[username]; ok {
		return u, nil
	}
	return nil, users.ErrNotFound
}

func (s *stubStore) FindByUsernameOrEmail(ctx context.Context, identifier string) (*users.User, error) {
	return s.FindByUsername(ctx, identifier)
}

func (s *stubStore) List(ctx context.Context, offset, limit int) ([]*users.User, error) {
	return nil, nil
}

func (s *stubStore) SetActive(ctx context.Context, id int64, active bool) error {
	return nil
}

func (s *stubStore) SetSuperuser(ctx context.Context, id int64, superuser bool) error {
	return nil
}

func newTestGateway(t *testing.T, store users.Store) (*Gateway, *auth.Service, *observability.Metrics) {
	t.Helper()
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService("gateway-test-secret", 30*time.Minute)
	service := auth.NewService(store, hasher, tokens, logger)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return NewGateway(service, metrics, logger), service, metrics
}

func okHandler(t *testing.T, wantUsername string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		require.NotNil(t, user)
		assert.Equal(t, wantUsername, user.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	store := &stubStore{byUsername: map[string]*users.User{
		"alice": {ID: 1, Username: "alice", Email: "alice@example.com", IsActive: true},
	}}
	gateway, service, metrics := newTestGateway(t, store)

	token, _, err := service.Tokens().Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gateway.Authenticate(okHandler(t, "alice")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.TokenValidationsTotal.WithLabelValues(observability.OutcomeSuccess)))
}

func TestAuthenticateMissingHeader(t *testing.T) {
	gateway, _, metrics := newTestGateway(t, &stubStore{})

	rec := httptest.NewRecorder()
	gateway.Authenticate(okHandler(t, "")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.TokenValidationsTotal.WithLabelValues(observability.OutcomeFailure)))
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	gateway, _, _ := newTestGateway(t, &stubStore{})

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		gateway.Authenticate(okHandler(t, "")).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	gateway, _, _ := newTestGateway(t, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	gateway.Authenticate(okHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	store := &stubStore{byUsername: map[string]*users.User{
		"bob": {ID: 2, Username: "bob", Email: "bob@example.com", IsActive: false},
	}}
	gateway, service, _ := newTestGateway(t, store)

	token, _, err := service.Tokens().Issue("bob")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gateway.Authenticate(okHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "inactive user")
}

func TestAuthenticateSchemeCaseInsensitive(t *testing.T) {
	store := &stubStore{byUsername: map[string]*users.User{
		"alice": {ID: 1, Username: "alice", IsActive: true},
	}}
	gateway, service, _ := newTestGateway(t, store)

	token, _, err := service.Tokens().Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()
	gateway.Authenticate(okHandler(t, "alice")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSuperuser(t *testing.T) {
	store := &stubStore{byUsername: map[string]*users.User{
		"admin": {ID: 1, Username: "admin", IsActive: true, IsSuperuser: true},
		"carol": {ID: 2, Username: "carol", IsActive: true},
	}}
	gateway, service, _ := newTestGateway(t, store)

	protected := gateway.Authenticate(gateway.RequireSuperuser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	adminToken, _, err := service.Tokens().Issue("admin")
	require.NoError(t, err)
	carolToken, _, err := service.Tokens().Issue("carol")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+carolToken)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCurrentUserAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, CurrentUser(req))
}
