// Package export writes a site to disk as static HTML files.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

const (
	dirMode  = 0o750
	fileMode = 0o644
)

// Page describes one exported route.
type Page struct {
	Route       string
	Source      string // source path relative to the docs folder
	Output      string // output path relative to the export directory
	Bytes       int
	Fingerprint string
}

// Report summarizes an export run.
type Report struct {
	OutputDir string
	Pages     []Page
	Sitemap   string // relative path of the written sitemap, empty when skipped
	Static    string // static directory copied into the output, empty when skipped
	Duration  time.Duration
}

// Options controls optional export outputs.
type Options struct {
	// SitemapBaseURL enables sitemap.xml output when non-empty.
	SitemapBaseURL string
	// CopyStatic copies the first existing static directory into the output.
	CopyStatic bool
}

// Exporter renders every route of a site into an output directory.
type Exporter struct {
	opts Options
}

// New creates an Exporter.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// OutputPath maps a route to its file path relative to the output directory:
// "/" becomes index.html and "/a/b" becomes a/b.html.
func OutputPath(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + ".html"
}

// Export writes one HTML file per route into outDir. Cancellation is checked
// between routes; a render failure aborts the export.
func (e *Exporter) Export(ctx context.Context, s *site.Site, outDir string) (Report, error) {
	start := time.Now()
	report := Report{OutputDir: outDir}

	if err := os.MkdirAll(outDir, dirMode); err != nil {
		return report, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", outDir).Build()
	}

	routes := s.Routes()
	for _, route := range routes.Routes() {
		if err := ctx.Err(); err != nil {
			return report, ferrors.WrapError(err, ferrors.CategoryInternal, "export canceled").
				WithContext("route", route).Build()
		}

		html, err := s.RenderPage(route)
		if err != nil {
			return report, err
		}

		rel := OutputPath(route)
		if err := writeFile(filepath.Join(outDir, filepath.FromSlash(rel)), []byte(html)); err != nil {
			return report, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write page").
				WithContext("route", route).WithContext("path", rel).Build()
		}

		entry, _ := routes.Entry(route)
		report.Pages = append(report.Pages, Page{
			Route:       route,
			Source:      entry.RelativePath,
			Output:      rel,
			Bytes:       len(html),
			Fingerprint: site.Fingerprint(html),
		})
		slog.Debug("Exported page", logfields.Route(route), logfields.Path(rel))
	}

	if e.opts.SitemapBaseURL != "" {
		const name = "sitemap.xml"
		if err := writeFile(filepath.Join(outDir, name), []byte(site.GenerateSitemap(e.opts.SitemapBaseURL, routes))); err != nil {
			return report, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write sitemap").
				WithContext("path", name).Build()
		}
		report.Sitemap = name
	}

	if e.opts.CopyStatic {
		if dir, ok := s.FirstStaticDir(); ok {
			if err := CopyDir(dir, outDir); err != nil {
				return report, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to copy static files").
					WithContext("path", dir).Build()
			}
			report.Static = dir
		}
	}

	report.Duration = time.Since(start)
	rec := s.Recorder()
	rec.ObserveExportDuration(report.Duration)
	rec.IncExportPages(len(report.Pages))

	slog.Info("Static export complete",
		logfields.Path(outDir),
		logfields.Count(len(report.Pages)),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	// #nosec G306 -- exported pages are public
	return os.WriteFile(path, data, fileMode)
}
