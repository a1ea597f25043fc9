package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Theme is a typed enumeration of the built-in color themes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists every supported theme in display order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark}
}

// Valid reports whether t names a built-in theme. Matching is exact.
func (t Theme) Valid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

// Config represents the site configuration.
//
// The YAML form mirrors the recognized options; any key left out keeps its
// value from Default().
type Config struct {
	Folder    string `yaml:"folder"`
	Title     string `yaml:"title"`
	Theme     Theme  `yaml:"theme"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	ShowNav   bool   `yaml:"show_nav"`
	CustomCSS string `yaml:"custom_css,omitempty"` // inline CSS or path to a .css file
	CustomJS  string `yaml:"custom_js,omitempty"`  // inline JS or path to a .js file

	// BaseURL prefixes sitemap locations. Empty means http://host:port.
	BaseURL string `yaml:"base_url,omitempty"`
	// Output is the static export directory.
	Output string `yaml:"output"`

	TOC            bool   `yaml:"toc,omitempty"`
	HighlightStyle string `yaml:"highlight_style,omitempty"` // chroma style name; empty disables highlighting
	Sanitize       bool   `yaml:"sanitize,omitempty"`
	CopyStatic     bool   `yaml:"copy_static,omitempty"`
	Metrics        bool   `yaml:"metrics,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SitemapBaseURL returns the base URL used for sitemap locations.
func (c Config) SitemapBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("http://%s", c.Addr())
}
