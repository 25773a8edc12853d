package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsAndExposes(t *testing.T) {
	collector := NewCollector()

	collector.RecordRequest("GET", "/v1/summaries", 200, 15*time.Millisecond)
	collector.RecordRequest("GET", "/v1/summaries", 500, 2*time.Millisecond)
	collector.RecordSummariesServed(9)
	collector.RecordProviderRequest("success")
	collector.RecordProviderRequest("timeout")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "marketbrief_http_requests_total")
	assert.Contains(t, body, "marketbrief_summaries_served_total 9")
	assert.Contains(t, body, `marketbrief_provider_requests_total{outcome="timeout"} 1`)
}

func TestNewCollector_IndependentRegistries(t *testing.T) {
	// Two collectors must not clash on registration.
	a := NewCollector()
	b := NewCollector()
	require.NotSame(t, a, b)

	a.RecordSummariesServed(1)
	b.RecordSummariesServed(2)
}
