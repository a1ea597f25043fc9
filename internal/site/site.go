// Package site assembles a documentation site from a configuration: the route
// table, navigation, rendered pages, error pages and the sitemap.
package site

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/mkpy/internal/assets"
	"git.home.luguber.info/inful/mkpy/internal/config"
	"git.home.luguber.info/inful/mkpy/internal/docs"
	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/markdown"
	"git.home.luguber.info/inful/mkpy/internal/metrics"
	"git.home.luguber.info/inful/mkpy/internal/theme"
)

// Site is a validated configuration with its route table and resolved assets.
// It is read-only after New and safe for concurrent use.
type Site struct {
	cfg       config.Config
	palette   theme.Palette
	routes    docs.RouteTable
	customCSS string
	customJS  string
	conv      *markdown.Converter
	recorder  metrics.Recorder
}

// Option customizes a Site.
type Option func(*Site)

// WithRecorder sets the metrics recorder used for page renders.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Site) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New validates cfg, builds the route table and resolves custom assets.
// An invalid theme is reported before the folder is inspected.
func New(cfg config.Config, opts ...Option) (*Site, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, ok := theme.Get(cfg.Theme)
	if !ok {
		return nil, ferrors.ValidationError(fmt.Sprintf("theme '%s' has no palette", cfg.Theme)).
			WithContext("theme", string(cfg.Theme)).Build()
	}

	routes, err := docs.BuildRoutes(cfg.Folder)
	if err != nil {
		return nil, err
	}

	css, err := assets.Load(cfg.Folder, cfg.CustomCSS, assets.CSS)
	if err != nil {
		return nil, err
	}
	js, err := assets.Load(cfg.Folder, cfg.CustomJS, assets.JS)
	if err != nil {
		return nil, err
	}

	s := &Site{
		cfg:       cfg,
		palette:   palette,
		routes:    routes,
		customCSS: css,
		customJS:  js,
		conv: markdown.NewConverter(markdown.Options{
			HighlightStyle: cfg.HighlightStyle,
			Sanitize:       cfg.Sanitize,
		}),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}

	slog.Info("Site loaded",
		logfields.Folder(cfg.Folder),
		logfields.Theme(string(cfg.Theme)),
		logfields.Count(routes.Len()))
	return s, nil
}

// Config returns the site configuration.
func (s *Site) Config() config.Config { return s.cfg }

// Routes returns the route table.
func (s *Site) Routes() docs.RouteTable { return s.routes }

// CustomCSS returns the composed custom stylesheet.
func (s *Site) CustomCSS() string { return s.customCSS }

// CustomJS returns the composed custom script.
func (s *Site) CustomJS() string { return s.customJS }

// Recorder returns the metrics recorder.
func (s *Site) Recorder() metrics.Recorder { return s.recorder }
