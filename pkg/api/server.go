package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/userhub-io/userhub/pkg/auth"
	"github.com/userhub-io/userhub/pkg/config"
	"github.com/userhub-io/userhub/pkg/httputil"
	"github.com/userhub-io/userhub/pkg/middleware"
	"github.com/userhub-io/userhub/pkg/observability"
	"github.com/userhub-io/userhub/pkg/version"
)

// Server wires handlers, middleware, and routes into an http.Handler
type Server struct {
	config  *config.Config
	logger  *observability.Logger
	auth    *auth.Service
	gateway *middleware.Gateway
	health  *observability.HealthChecker
	metrics *observability.Metrics
	router  *mux.Router
}

// NewServer creates the API server. metrics may be nil when metrics
// collection is disabled; the /metrics route is then omitted.
func NewServer(
	cfg *config.Config,
	logger *observability.Logger,
	authService *auth.Service,
	health *observability.HealthChecker,
	metrics *observability.Metrics,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		auth:    authService,
		gateway: middleware.NewGateway(authService, metrics, logger),
		health:  health,
		metrics: metrics,
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the fully assembled handler
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(httputil.RecoveryMiddleware(s.logger))
	router.Use(httputil.RequestIDMiddleware)
	router.Use(httputil.LoggingMiddleware(s.logger))
	router.Use(httputil.CORSMiddleware(s.config.App.CORSOrigins))
	if s.metrics != nil {
		router.Use(s.metrics.HTTPMiddleware)
	}

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/token", s.handleToken).Methods(http.MethodPost)
	api.Handle("/auth/metadata",
		s.gateway.Authenticate(http.HandlerFunc(s.handleMetadata))).Methods(http.MethodGet)

	api.Handle("/users/me",
		s.gateway.Authenticate(http.HandlerFunc(s.handleMe))).Methods(http.MethodGet)
	api.Handle("/users",
		s.gateway.Authenticate(s.gateway.RequireSuperuser(http.HandlerFunc(s.handleListUsers)))).Methods(http.MethodGet)

	return router
}

// writeServiceError maps domain errors to HTTP responses. Unexpected
// errors are logged and surfaced as a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case auth.IsValidation(err), auth.IsConflict(err), auth.IsInactiveUser(err):
		httputil.WriteBadRequest(w, err.Error())
	case auth.IsAuthentication(err):
		httputil.WriteUnauthorized(w, err.Error())
	case auth.IsForbidden(err):
		httputil.WriteForbidden(w, err.Error())
	default:
		s.logger.WithError(err).Error("request failed")
		httputil.WriteInternalError(w)
	}
}

// appMetadata builds the application identity block
func (s *Server) appMetadata() AppMetadata {
	return AppMetadata{
		Name:        s.config.App.Name,
		Environment: s.config.App.Environment,
		Build:       version.Info(),
	}
}
