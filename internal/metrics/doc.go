// Package metrics provides render, export and HTTP metrics for mkpy.
//
// Components receive a Recorder through their options and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	s, err := site.New(cfg, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The Prometheus implementation is activated by `metrics: true` in the site
// configuration, which also exposes /-/metrics on the dev server.
package metrics
