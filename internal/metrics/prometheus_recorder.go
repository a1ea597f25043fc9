package metrics

import (
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "mkpy"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	renderDuration *prom.HistogramVec
	renderResults  *prom.CounterVec
	exportDuration prom.Histogram
	exportPages    prom.Counter
	httpRequests   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of page renders",
			Buckets:   prom.DefBuckets,
		}, []string{"result"})
		pr.renderResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_results_total",
			Help:      "Page render counts by route and outcome",
		}, []string{"route", "result"})
		pr.exportDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Total static export duration",
			Buckets:   prom.DefBuckets,
		})
		pr.exportPages = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "export_pages_total",
			Help:      "Pages written by static exports",
		})
		pr.httpRequests = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by method and status code",
		}, []string{"method", "status"})
		reg.MustRegister(pr.renderDuration, pr.renderResults, pr.exportDuration, pr.exportPages, pr.httpRequests)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRender(route string, d time.Duration, ok bool) {
	if p == nil || p.renderDuration == nil {
		return
	}
	res := string(ResultFor(ok))
	p.renderDuration.WithLabelValues(res).Observe(d.Seconds())
	p.renderResults.WithLabelValues(route, res).Inc()
}

func (p *PrometheusRecorder) ObserveExportDuration(d time.Duration) {
	if p == nil || p.exportDuration == nil {
		return
	}
	p.exportDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncExportPages(n int) {
	if p == nil || p.exportPages == nil {
		return
	}
	p.exportPages.Add(float64(n))
}

func (p *PrometheusRecorder) IncHTTPRequest(method string, status int) {
	if p == nil || p.httpRequests == nil {
		return
	}
	p.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
