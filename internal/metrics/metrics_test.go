package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_RequestFinished(t *testing.T) {
	m := New()

	m.RequestStarted()
	m.RequestFinished(http.MethodGet, "/api/products/{id}", http.StatusOK, 20*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `order_keeper_http_requests_total{method="GET",route="/api/products/{id}",status="200"} 1`)
	assert.Contains(t, body, `order_keeper_http_in_flight_requests 0`)
	assert.Contains(t, body, `order_keeper_http_request_duration_seconds_count{method="GET",route="/api/products/{id}",status="200"} 1`)
}

func TestMetrics_AuthDecision(t *testing.T) {
	m := New()

	m.AuthDecision(DecisionUnauthorized)
	m.AuthDecision(DecisionUnauthorized)
	m.AuthDecision(DecisionAllowed)

	body := scrape(t, m)
	assert.Contains(t, body, `order_keeper_auth_decisions_total{outcome="unauthorized"} 2`)
	assert.Contains(t, body, `order_keeper_auth_decisions_total{outcome="allowed"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	a.AuthDecision(DecisionForbidden)

	assert.Contains(t, scrape(t, a), `outcome="forbidden"`)
	assert.NotContains(t, scrape(t, b), `outcome="forbidden"`)
}
