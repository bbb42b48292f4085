package api

import (
	"net/http"

	"github.com/userhub-io/userhub/pkg/httputil"
	"github.com/userhub-io/userhub/pkg/middleware"
	"github.com/userhub-io/userhub/pkg/observability"
)

// handleRegister creates a new user account.
//
// POST /api/auth/register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Email, "email") {
		return
	}
	if !httputil.RequireNonEmpty(w, req.Password, "password") {
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RegistrationsTotal.Inc()
	}
	httputil.WriteSuccess(w, user)
}

// handleToken exchanges a username (or email) and password for an
// access token. Credentials arrive form-encoded in the OAuth2
// password-grant shape.
//
// POST /api/auth/token
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.WriteBadRequest(w, "invalid form data")
		return
	}

	identifier := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if !httputil.RequireNonEmpty(w, identifier, "username") {
		return
	}
	if !httputil.RequireNonEmpty(w, password, "password") {
		return
	}

	token, expiresAt, err := s.auth.Login(r.Context(), identifier, password)
	if err != nil {
		s.recordLogin(observability.OutcomeFailure)
		s.writeServiceError(w, err)
		return
	}

	s.recordLogin(observability.OutcomeSuccess)
	httputil.WriteSuccess(w, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// handleMetadata returns the combined session document: the current
// user, service health, a fresh access token with effective
// permissions, and application build identity.
//
// GET /api/auth/metadata
func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	token, expiresAt, err := s.auth.Tokens().Issue(user.Username)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	permissions := []string{"read"}
	if user.IsSuperuser {
		permissions = append(permissions, "write")
	}

	httputil.WriteSuccess(w, MetadataResponse{
		User:   user,
		Health: s.health.Check(r.Context()),
		Auth: AuthMetadata{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   expiresAt,
			Permissions: permissions,
		},
		Application: s.appMetadata(),
	})
}

func (s *Server) recordLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
	}
}
