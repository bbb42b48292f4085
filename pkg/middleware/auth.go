package middleware

import (
	"net/http"
	"strings"

	"github.com/userhub-io/userhub/pkg/auth"
	"github.com/userhub-io/userhub/pkg/contextkeys"
	"github.com/userhub-io/userhub/pkg/httputil"
	"github.com/userhub-io/userhub/pkg/observability"
	"github.com/userhub-io/userhub/pkg/users"
)

// Gateway authenticates bearer tokens on protected routes and exposes
// the resolved user to downstream handlers via the request context
type Gateway struct {
	auth    *auth.Service
	metrics *observability.Metrics
	logger  *observability.Logger
}

// NewGateway creates an auth gateway. metrics may be nil when metrics
// collection is disabled.
func NewGateway(authService *auth.Service, metrics *observability.Metrics, logger *observability.Logger) *Gateway {
	return &Gateway{
		auth:    authService,
		metrics: metrics,
		logger:  logger,
	}
}

// Authenticate requires a valid bearer token for an active user. The
// resolved user is stored in the request context; handlers retrieve it
// with CurrentUser.
func (g *Gateway) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			g.recordValidation(observability.OutcomeFailure)
			httputil.WriteUnauthorized(w, "not authenticated")
			return
		}

		user, err := g.auth.AuthorizeActive(r.Context(), token)
		if err != nil {
			g.recordValidation(observability.OutcomeFailure)
			switch {
			case auth.IsAuthentication(err):
				httputil.WriteUnauthorized(w, err.Error())
			case auth.IsInactiveUser(err):
				httputil.WriteBadRequest(w, "inactive user")
			default:
				g.logger.WithError(err).Error("token authorization failed")
				httputil.WriteInternalError(w)
			}
			return
		}

		g.recordValidation(observability.OutcomeSuccess)
		next.ServeHTTP(w, r.WithContext(contextkeys.WithUser(r.Context(), user)))
	})
}

// RequireSuperuser rejects requests whose authenticated user is not a
// superuser. Must run after Authenticate.
func (g *Gateway) RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := g.auth.RequireSuperuser(CurrentUser(r)); err != nil {
			httputil.WriteForbidden(w, err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the user resolved by Authenticate, or nil
func CurrentUser(r *http.Request) *users.User {
	user, _ := contextkeys.User(r.Context()).(*users.User)
	return user
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (g *Gateway) recordValidation(outcome string) {
	if g.metrics != nil {
		g.metrics.TokenValidationsTotal.WithLabelValues(outcome).Inc()
	}
}
