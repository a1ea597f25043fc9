package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveRender("/about", 15*time.Millisecond, true)
	pr.ObserveRender("/missing", time.Millisecond, false)
	pr.ObserveExportDuration(500 * time.Millisecond)
	pr.IncExportPages(3)
	pr.IncHTTPRequest(http.MethodGet, http.StatusOK)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"mkpy_render_duration_seconds",
		"mkpy_render_results_total",
		"mkpy_export_duration_seconds",
		"mkpy_export_pages_total",
		"mkpy_http_requests_total",
	} {
		require.True(t, names[want], "missing metric %s", want)
	}
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveRender("/", time.Second, true)
	pr.ObserveExportDuration(time.Second)
	pr.IncExportPages(1)
	pr.IncHTTPRequest(http.MethodGet, http.StatusOK)
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncExportPages(2)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "mkpy_export_pages_total 2"))
}

func TestNewRegistryServesRuntimeMetrics(t *testing.T) {
	reg := NewRegistry()
	NewPrometheusRecorder(reg).IncHTTPRequest(http.MethodGet, http.StatusNotFound)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))
	body := rec.Body.String()
	require.Contains(t, body, "go_goroutines")
	require.Contains(t, body, `mkpy_http_requests_total{method="GET",status="404"} 1`)
}
