package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"time"

	derrors "git.home.luguber.info/inful/mkpy/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/frontmatter"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/markdown"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	pageTemplate  = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))
	errorTemplate = template.Must(template.ParseFS(templateFS, "templates/error.html.tmpl"))
)

const tocMaxLevel = 3

type pageData struct {
	Title     string
	BaseCSS   template.CSS
	AccentCSS template.CSS
	Divider   template.CSS
	CustomCSS template.CSS
	ShowNav   bool
	Nav       []NavEntry
	TOC       []markdown.Heading
	Content   template.HTML
	CustomJS  template.HTML
}

type errorData struct {
	Code      int
	Message   string
	BaseCSS   template.CSS
	AccentCSS template.CSS
}

// RenderPage renders the page for route as a complete HTML document.
func (s *Site) RenderPage(route string) (string, error) {
	src, ok := s.routes.Lookup(route)
	if !ok {
		return "", ferrors.WrapError(derrors.ErrRouteNotFound, ferrors.CategoryNotFound, "page not found").
			WithContext("route", route).Build()
	}

	start := time.Now()
	html, err := s.RenderFile(src)
	s.recorder.ObserveRender(route, time.Since(start), err == nil)
	if err != nil {
		return "", err
	}
	slog.Debug("Rendered page", logfields.Route(route), logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return html, nil
}

// RenderFile renders an arbitrary markdown file with the site chrome.
func (s *Site) RenderFile(path string) (string, error) {
	// #nosec G304 -- source path comes from the route table or the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		category := ferrors.CategoryFileSystem
		if errors.Is(err, fs.ErrNotExist) {
			category = ferrors.CategoryNotFound
		}
		return "", ferrors.WrapError(fmt.Errorf("%w: %w", derrors.ErrSourceRead, err), category,
			"failed to read documentation source").WithContext("file", path).Build()
	}

	body := frontmatter.Parse(raw).Body
	content, err := s.conv.Convert(body)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "failed to convert markdown").
			WithContext("file", path).Build()
	}

	// #nosec G203 -- theme CSS, converter output and author-supplied assets are trusted
	data := pageData{
		Title:     s.cfg.Title,
		BaseCSS:   template.CSS(s.palette.CSS),
		AccentCSS: template.CSS(s.navAccentCSS()),
		Divider:   template.CSS(s.palette.Divider),
		CustomCSS: template.CSS(s.customCSS),
		Content:   template.HTML(content),
		CustomJS:  template.HTML(s.customJS),
		ShowNav:   s.cfg.ShowNav,
	}
	if s.cfg.ShowNav {
		data.Nav = s.Navigation()
	}
	if s.cfg.TOC {
		data.TOC = markdown.ExtractHeadings(body, tocMaxLevel)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "failed to execute page template").
			WithContext("file", path).Build()
	}
	return buf.String(), nil
}

// RenderErrorPage renders a themed standalone error document.
func (s *Site) RenderErrorPage(code int, message string) string {
	// #nosec G203 -- palette constants
	data := errorData{
		Code:      code,
		Message:   message,
		BaseCSS:   template.CSS(s.palette.CSS),
		AccentCSS: template.CSS(fmt.Sprintf("a { color: %s; }", s.palette.Link)),
	}
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, data); err != nil {
		slog.Error("Failed to render error page", logfields.Status(code), logfields.Error(err))
		return fmt.Sprintf("%d %s", code, template.HTMLEscapeString(message))
	}
	return buf.String()
}

func (s *Site) navAccentCSS() string {
	return fmt.Sprintf(`.mkpy-nav {
    margin-bottom: 2em;
    padding-bottom: 1em;
    border-bottom: 1px solid %s;
}
.mkpy-nav a {
    margin-right: 1em;
    color: %s;
}
.mkpy-toc ul { list-style: none; padding-left: 0; }
.mkpy-toc-h2 { padding-left: 1em; }
.mkpy-toc-h3 { padding-left: 2em; }`, s.palette.Divider, s.palette.Link)
}
