package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.LinkCreated()
	m.LinkCreated()
	m.SlugCollision()
	m.VisitRecorded()
	m.VisitRecordFailed()

	assert.InDelta(t, 2, testutil.ToFloat64(m.linksCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.slugCollisions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.visitsRecorded), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.visitRecordErrors), 0)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/:slug", http.StatusMovedPermanently, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/:slug", "301")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.LinkCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shortlinks_links_created_total 1")
}
