package metrics

import (
	"testing"
	"time"
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveRender("/", time.Millisecond, true)
	r.ObserveExportDuration(time.Second)
	r.IncExportPages(10)
	r.IncHTTPRequest("GET", 200)
}

func TestResultFor(t *testing.T) {
	if ResultFor(true) != ResultSuccess || ResultFor(false) != ResultFailed {
		t.Fatal("unexpected result labels")
	}
}
