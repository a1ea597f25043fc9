package site

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mkpy/internal/frontmatter"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/markdown"
)

// NavEntry is a navigation link.
type NavEntry struct {
	Route string
	Title string
}

// Navigation lists every route with its title in route order. It reads the
// sources on each call so titles follow the files on disk.
func (s *Site) Navigation() []NavEntry {
	routes := s.routes.Routes()
	nav := make([]NavEntry, 0, len(routes))
	for _, route := range routes {
		src, _ := s.routes.Lookup(route)
		nav = append(nav, NavEntry{Route: route, Title: pageTitle(src)})
	}
	return nav
}

func pageTitle(src string) string {
	name := filepath.Base(src)
	// #nosec G304 -- source path comes from the route table
	data, err := os.ReadFile(src)
	if err != nil {
		slog.Warn("Failed to read source for navigation title", logfields.File(src), logfields.Error(err))
		return markdown.TitleFromFilename(name)
	}
	doc := frontmatter.Parse(data)
	if t := doc.Title(); t != "" {
		return t
	}
	return markdown.ExtractTitle(string(doc.Body), name)
}
