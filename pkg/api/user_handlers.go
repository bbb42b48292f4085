package api

import (
	"net/http"
	"runtime"

	"github.com/userhub-io/userhub/pkg/httputil"
	"github.com/userhub-io/userhub/pkg/middleware"
	"github.com/userhub-io/userhub/pkg/observability"
)

// handleMe returns the authenticated user.
//
// GET /api/users/me
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, middleware.CurrentUser(r))
}

// handleListUsers returns a page of users in creation order.
//
// GET /api/users?skip=N&limit=M
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	skip, ok := httputil.ParseQueryIntOrError(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := httputil.ParseQueryIntOrError(w, r, "limit", 100)
	if !ok {
		return
	}

	list, err := s.auth.ListUsers(r.Context(), middleware.CurrentUser(r), skip, limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	httputil.WriteSuccess(w, list)
}

// handleHealth reports service health with runtime diagnostics.
// Unauthenticated; returns 503 when the database is unreachable.
//
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.health.Check(r.Context())

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := HealthResponse{
		Status:    status.Status,
		Database:  status.DatabaseStatus,
		Timestamp: status.Timestamp,
		Runtime: RuntimeInfo{
			GoVersion:    runtime.Version(),
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
			AllocBytes:   mem.Alloc,
			SysBytes:     mem.Sys,
		},
		Application: s.appMetadata(),
	}

	code := http.StatusOK
	if status.Status != observability.StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, code, resp)
}
