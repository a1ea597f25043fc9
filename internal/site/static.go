package site

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticDirs lists the directories searched for static files, in priority
// order: folder/../static, ./static and ./assets.
func (s *Site) StaticDirs() []string {
	return []string{
		filepath.Join(s.cfg.Folder, "..", "static"),
		"static",
		"assets",
	}
}

// ProjectStaticDir is the static directory that sits next to the docs folder.
func (s *Site) ProjectStaticDir() string {
	return s.StaticDirs()[0]
}

// ResolveStatic maps a URL path onto an existing static file. Paths are
// cleaned against the root first, so ".." segments cannot leave a static dir.
func (s *Site) ResolveStatic(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if rel == "" {
		return "", false
	}
	for _, dir := range s.StaticDirs() {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		candidate := filepath.Join(dir, filepath.FromSlash(rel))
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// FirstStaticDir returns the first static directory that exists.
func (s *Site) FirstStaticDir() (string, bool) {
	for _, dir := range s.StaticDirs() {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}
