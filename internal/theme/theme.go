// Package theme holds the built-in color themes and their accent colors.
package theme

import (
	_ "embed"
	"sort"
	"sync"

	"git.home.luguber.info/inful/mkpy/internal/config"
)

//go:embed assets/light.css
var lightCSS string

//go:embed assets/dark.css
var darkCSS string

// Palette is a named base stylesheet plus the accent colors used by navigation,
// footer and error pages.
type Palette struct {
	Name    config.Theme
	CSS     string
	Link    string // link and nav color
	Divider string // border color for nav and footer rules
}

var (
	regMu sync.RWMutex
	reg   = map[config.Theme]Palette{}
)

func init() {
	Register(Palette{Name: config.ThemeLight, CSS: lightCSS, Link: "#0066cc", Divider: "#eee"})
	Register(Palette{Name: config.ThemeDark, CSS: darkCSS, Link: "#58a6ff", Divider: "#30363d"})
}

// Register adds a palette. Duplicate names are ignored.
func Register(p Palette) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := reg[p.Name]; exists {
		return
	}
	reg[p.Name] = p
}

// Get returns the palette registered for name.
func Get(name config.Theme) (Palette, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	p, ok := reg[name]
	return p, ok
}

// Names lists registered palettes in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names
}
