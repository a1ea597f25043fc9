package site

import (
	"encoding/xml"
	"strings"

	"git.home.luguber.info/inful/mkpy/internal/docs"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// GenerateSitemap renders a sitemaps.org urlset with one location per route,
// in route order.
func GenerateSitemap(baseURL string, routes docs.RouteTable) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString("<urlset xmlns=\"" + sitemapNS + "\">\n")
	for i, route := range routes.Routes() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  <url>\n    <loc>")
		_ = xml.EscapeText(&sb, []byte(baseURL+route))
		sb.WriteString("</loc>\n  </url>")
	}
	sb.WriteString("\n</urlset>")
	return sb.String()
}

// Sitemap renders the sitemap for this site using the configured base URL.
func (s *Site) Sitemap() string {
	return GenerateSitemap(s.cfg.SitemapBaseURL(), s.routes)
}
