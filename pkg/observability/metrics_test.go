package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegisters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.RegistrationsTotal.Inc()
	m.LoginAttemptsTotal.WithLabelValues(OutcomeSuccess).Inc()
	m.LoginAttemptsTotal.WithLabelValues(OutcomeFailure).Add(2)
	m.TokenValidationsTotal.WithLabelValues(OutcomeSuccess).Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RegistrationsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues(OutcomeFailure)))
}

func TestMetricsNilRegistry(t *testing.T) {
	m := NewMetrics(nil)
	assert.NotNil(t, m.Handler())
}

func TestHTTPMiddlewareRecordsRequests(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/auth/register", "201")))
}

func TestMetricsHandlerServes(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RegistrationsTotal.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "userhub_registrations_total")
}
