package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/mkpy/internal/config"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/metrics"
	"git.home.luguber.info/inful/mkpy/internal/server/httpserver"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	File string `arg:"" optional:"" help:"YAML configuration file"`
	SiteFlags

	Host    string `help:"Host address"`
	Port    int    `short:"p" help:"Port number"`
	Metrics bool   `help:"Expose Prometheus metrics at /-/metrics"`
}

func (s *ServeCmd) config(root *CLI) (config.Config, error) {
	cfg, err := loadConfig(root, s.File)
	if err != nil {
		return cfg, err
	}
	s.SiteFlags.apply(&cfg)
	if s.Host != "" {
		cfg.Host = s.Host
	}
	if s.Port != 0 {
		cfg.Port = s.Port
	}
	if s.Metrics {
		cfg.Metrics = true
	}
	return cfg, nil
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := s.config(root)
	if err != nil {
		return err
	}

	var (
		opts           []site.Option
		metricsHandler http.Handler
	)
	if cfg.Metrics {
		reg := metrics.NewRegistry()
		opts = append(opts, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
		metricsHandler = metrics.HTTPHandler(reg)
	}

	st, err := site.New(cfg, opts...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(st.ProjectStaticDir(), 0o750); err != nil {
		g.logger().Warn("Failed to create static directory", logfields.Path(st.ProjectStaticDir()), logfields.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(st, httpserver.Options{MetricsHandler: metricsHandler, Logger: g.logger()})
	if err := srv.Start(ctx); err != nil {
		return err
	}

	out := g.out()
	_, _ = fmt.Fprintln(out, "mkpy started")
	_, _ = fmt.Fprintf(out, "Docs: %s\n", cfg.Folder)
	_, _ = fmt.Fprintf(out, "Theme: %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(out, "-> http://%s\n", srv.Addr())
	_, _ = fmt.Fprintln(out, "Press Ctrl+C to stop")

	<-ctx.Done()
	_, _ = fmt.Fprintln(out, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
