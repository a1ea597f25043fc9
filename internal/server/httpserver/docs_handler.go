package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

const sitemapPath = "/sitemap.xml"

// requestPath drops trailing slashes; the root stays "/".
func requestPath(r *http.Request) string {
	p := strings.TrimRight(r.URL.Path, "/")
	if p == "" {
		return "/"
	}
	return p
}

// handleDocs resolves, in order: the sitemap, static files, routes, the
// trailing-slash redirect and finally the not-found page.
func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	p := requestPath(r)

	if p == sitemapPath {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(s.site.Sitemap()))
		return
	}

	if file, ok := s.site.ResolveStatic(p); ok {
		s.serveStatic(w, r, file)
		return
	}

	routes := s.site.Routes()
	switch {
	case routes.Has(p):
		s.servePage(w, r, p)
	case routes.Has(p + "/"):
		http.Redirect(w, r, p+"/", http.StatusFound)
	default:
		s.writeError(w, http.StatusNotFound, "Page Not Found")
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, route string) {
	html, err := s.site.RenderPage(route)
	if err != nil {
		s.errorAdapter.WriteErrorPage(w, r, err, s.site.RenderErrorPage)
		return
	}

	etag := `"` + site.Fingerprint(html) + `"`
	h := w.Header()
	h.Set("Cache-Control", "no-cache")
	h.Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request, file string) {
	// #nosec G304 -- file was resolved inside a static directory
	f, err := os.Open(file)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "Page Not Found")
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	s.opts.Logger.Debug("Serving static file", logfields.File(file))
	http.ServeContent(w, r, filepath.Base(file), info.ModTime(), f)
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(s.site.RenderErrorPage(code, message)))
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
