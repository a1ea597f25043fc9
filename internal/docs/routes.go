package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	derrors "git.home.luguber.info/inful/mkpy/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
)

const markdownExt = ".md"

// Entry is a single source file backing a route.
type Entry struct {
	Source       string // Path to the markdown file (joined onto the docs folder)
	RelativePath string // Slash-separated path relative to the docs folder
}

// RouteTable maps canonical routes to their markdown sources. It is immutable once built.
type RouteTable struct {
	entries map[string]Entry
}

// NewRouteTable builds a table from route → source path pairs.
func NewRouteTable(sources map[string]string) RouteTable {
	entries := make(map[string]Entry, len(sources))
	for route, src := range sources {
		entries[route] = Entry{Source: src, RelativePath: filepath.ToSlash(src)}
	}
	return RouteTable{entries: entries}
}

// Routes returns every route in lexicographic order.
func (t RouteTable) Routes() []string {
	routes := make([]string, 0, len(t.entries))
	for r := range t.entries {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	return routes
}

// Lookup returns the source path for route.
func (t RouteTable) Lookup(route string) (string, bool) {
	e, ok := t.entries[route]
	return e.Source, ok
}

// Entry returns the full entry for route.
func (t RouteTable) Entry(route string) (Entry, bool) {
	e, ok := t.entries[route]
	return e, ok
}

// Has reports whether route is in the table.
func (t RouteTable) Has(route string) bool {
	_, ok := t.entries[route]
	return ok
}

// Len returns the number of routes.
func (t RouteTable) Len() int {
	return len(t.entries)
}

// RouteFor converts a slash-separated path relative to the docs folder into a route.
// The second return value is false when rel is not a markdown file.
//
//	index.md         -> /
//	about.md         -> /about
//	guide/index.md   -> /guide
//	guide/install.md -> /guide/install
func RouteFor(rel string) (string, bool) {
	if !strings.HasSuffix(rel, markdownExt) {
		return "", false
	}
	stem := strings.TrimSuffix(rel, markdownExt)
	switch {
	case stem == "index":
		stem = ""
	case strings.HasSuffix(stem, "/index"):
		stem = strings.TrimSuffix(stem, "index")
	}
	trimmed := strings.Trim(stem, "/")
	if trimmed == "" {
		return "/", true
	}
	return path.Clean("/" + trimmed), true
}

// BuildRoutes walks folder and assigns a route to every markdown file beneath it.
// Two files that normalize to the same route are rejected with ErrRouteCollision.
func BuildRoutes(folder string) (RouteTable, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		cause := derrors.ErrFolderNotFound
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			cause = fmt.Errorf("%w: %w", derrors.ErrFolderNotFound, err)
		}
		return RouteTable{}, ferrors.WrapError(cause, ferrors.CategoryNotFound,
			fmt.Sprintf("folder '%s' not found", folder)).
			Fatal().WithContext("folder", folder).Build()
	}

	entries := make(map[string]Entry)
	walkErr := filepath.WalkDir(folder, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(folder, p)
		if err != nil {
			return fmt.Errorf("%w: %w", derrors.ErrInvalidRelativePath, err)
		}
		rel = filepath.ToSlash(rel)

		route, ok := RouteFor(rel)
		if !ok {
			return nil
		}
		if prev, exists := entries[route]; exists {
			return ferrors.WrapError(derrors.ErrRouteCollision, ferrors.CategoryValidation,
				fmt.Sprintf("route %s is produced by both %s and %s", route, prev.RelativePath, rel)).
				Fatal().
				WithContext("route", route).
				WithContext("first", prev.RelativePath).
				WithContext("second", rel).
				Build()
		}
		entries[route] = Entry{Source: p, RelativePath: rel}
		slog.Debug("Discovered route", logfields.Route(route), logfields.File(rel))
		return nil
	})
	if walkErr != nil {
		if ferrors.IsClassified(walkErr) {
			return RouteTable{}, walkErr
		}
		return RouteTable{}, ferrors.WrapError(fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, walkErr),
			ferrors.CategoryFileSystem, "failed to scan documentation folder").
			WithContext("folder", folder).Build()
	}

	slog.Debug("Route table built", logfields.Folder(folder), logfields.Count(len(entries)))
	return RouteTable{entries: entries}, nil
}
