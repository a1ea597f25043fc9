// Package assets discovers folder-level stylesheets and scripts and resolves
// custom CSS/JS values that may be inline text or file references.
package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
)

// Kind selects the asset type.
type Kind string

const (
	CSS Kind = "css"
	JS  Kind = "js"
)

// Ext returns the file extension for the kind, including the dot.
func (k Kind) Ext() string { return "." + string(k) }

// DiscoverFolderAssets concatenates every <kind> file found directly in
// folder/<kind>, in filename order, separated by newlines. A missing
// subfolder yields the empty string.
func DiscoverFolderAssets(folder string, kind Kind) (string, error) {
	dir := filepath.Join(folder, string(kind))
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to list asset folder").
			WithContext("folder", dir).Build()
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), kind.Ext()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		// #nosec G304 -- assets are read from the configured docs folder
		data, err := os.ReadFile(p)
		if err != nil {
			return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, fmt.Sprintf("failed to read %s asset", kind)).
				WithContext("file", p).Build()
		}
		parts = append(parts, string(data))
	}
	if len(parts) > 0 {
		slog.Debug("Discovered folder assets", slog.String("kind", string(kind)), logfields.Count(len(parts)), logfields.Folder(dir))
	}
	return strings.Join(parts, "\n"), nil
}

// ResolveAssetValue returns the contents of value when it names an existing
// file of the given kind, looked up relative to the working directory and
// then to folder/..; otherwise value is returned unchanged as inline content.
func ResolveAssetValue(value, folder string, kind Kind) string {
	if value == "" || !strings.HasSuffix(value, kind.Ext()) {
		return value
	}
	for _, candidate := range []string{value, filepath.Join(folder, "..", value)} {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		// #nosec G304 -- path comes from site configuration
		data, err := os.ReadFile(candidate)
		if err != nil {
			slog.Warn("Failed to read custom asset", logfields.File(candidate), logfields.Error(err))
			continue
		}
		return string(data)
	}
	slog.Debug("Custom asset treated as inline content", slog.String("kind", string(kind)), slog.String("value", value))
	return value
}

// Compose joins discovered and explicit assets with a newline, discovered first.
func Compose(discovered, explicit string) string {
	switch {
	case discovered == "":
		return explicit
	case explicit == "":
		return discovered
	default:
		return discovered + "\n" + explicit
	}
}

// Load discovers folder assets, resolves the explicit value and composes both.
func Load(folder, explicit string, kind Kind) (string, error) {
	discovered, err := DiscoverFolderAssets(folder, kind)
	if err != nil {
		return "", err
	}
	return Compose(discovered, ResolveAssetValue(explicit, folder, kind)), nil
}
