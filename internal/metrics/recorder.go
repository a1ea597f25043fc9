package metrics

import "time"

// ResultLabel enumerates outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// ResultFor maps a success flag to its label.
func ResultFor(ok bool) ResultLabel {
	if ok {
		return ResultSuccess
	}
	return ResultFailed
}

// Recorder defines observability hooks for rendering, static export and the
// HTTP server. Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveRender(route string, d time.Duration, ok bool)
	ObserveExportDuration(d time.Duration)
	IncExportPages(n int)
	IncHTTPRequest(method string, status int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRender(string, time.Duration, bool) {}
func (NoopRecorder) ObserveExportDuration(time.Duration)       {}
func (NoopRecorder) IncExportPages(int)                        {}
func (NoopRecorder) IncHTTPRequest(string, int)                {}
