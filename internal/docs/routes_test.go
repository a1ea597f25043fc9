package docs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/mkpy/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		rel   string
		route string
		ok    bool
	}{
		{"index.md", "/", true},
		{"about.md", "/about", true},
		{"guide/install.md", "/guide/install", true},
		{"guide/index.md", "/guide", true},
		{"a/b/index.md", "/a/b", true},
		{"reindex.md", "/reindex", true},
		{"guide/myindex.md", "/guide/myindex", true},
		{"README.MD", "", false},
		{"css/site.css", "", false},
		{"notes.markdown", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			route, ok := RouteFor(tt.rel)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.route, route)
		})
	}
}

func TestBuildRoutes_Basic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.md":         "# Home",
		"about.md":         "# About",
		"guide/install.md": "# Install",
		"css/site.css":     "body{}",
		"guide/image.png":  "png",
	})

	table, err := BuildRoutes(root)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"/", "/about", "/guide/install"}, table.Routes())

	expected := map[string]string{
		"/":              "index.md",
		"/about":         "about.md",
		"/guide/install": "guide/install.md",
	}
	for route, rel := range expected {
		src, ok := table.Lookup(route)
		require.True(t, ok, route)
		assert.Equal(t, filepath.Join(root, filepath.FromSlash(rel)), src)

		entry, ok := table.Entry(route)
		require.True(t, ok)
		assert.Equal(t, rel, entry.RelativePath)
	}
}

func TestBuildRoutes_RoutesAreUniqueAndRooted(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.md":          "",
		"a/index.md":        "",
		"a/b.md":            "",
		"a/b/c.md":          "",
		"z/deep/y/index.md": "",
		".hidden.md":        "",
	})

	table, err := BuildRoutes(root)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range table.Routes() {
		assert.True(t, strings.HasPrefix(r, "/"), r)
		assert.False(t, seen[r], "duplicate route %s", r)
		seen[r] = true
		if r != "/" {
			assert.False(t, strings.HasSuffix(r, "/"), r)
		}
	}
	assert.True(t, table.Has("/z/deep/y"))
	assert.True(t, table.Has("/.hidden"))
}

func TestBuildRoutes_Collision(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"foo.md":       "# Foo",
		"foo/index.md": "# Foo index",
	})

	_, err := BuildRoutes(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrRouteCollision))
	assert.Contains(t, err.Error(), "/foo")
}

func TestBuildRoutes_MissingFolder(t *testing.T) {
	_, err := BuildRoutes(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.ErrFolderNotFound))
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestBuildRoutes_FileIsNotFolder(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := BuildRoutes(file)
	require.ErrorIs(t, err, derrors.ErrFolderNotFound)
}

func TestBuildRoutes_Empty(t *testing.T) {
	table, err := BuildRoutes(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Routes())
}

func TestNewRouteTable(t *testing.T) {
	table := NewRouteTable(map[string]string{"/about": "about.md", "/": "index.md"})
	assert.Equal(t, []string{"/", "/about"}, table.Routes())
	src, ok := table.Lookup("/about")
	assert.True(t, ok)
	assert.Equal(t, "about.md", src)
	_, ok = table.Lookup("/missing")
	assert.False(t, ok)
}
