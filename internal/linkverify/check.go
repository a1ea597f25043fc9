// Package linkverify checks rendered pages for internal links that lead nowhere.
package linkverify

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

const sitemapPath = "/sitemap.xml"

// BrokenLink is an internal link whose target is neither a route nor a static file.
type BrokenLink struct {
	Page   string // route of the page containing the link
	URL    string // link as written
	Target string // resolved request path
	Tag    string
}

// Check renders every route of s and reports internal links that cannot be served.
func Check(ctx context.Context, s *site.Site) ([]BrokenLink, error) {
	var broken []BrokenLink
	routes := s.Routes()
	for _, route := range routes.Routes() {
		if err := ctx.Err(); err != nil {
			return broken, errors.WrapError(err, errors.CategoryInternal, "link check canceled").Build()
		}

		page, err := s.RenderPage(route)
		if err != nil {
			return broken, err
		}
		links, err := ExtractLinksFromReader(strings.NewReader(page))
		if err != nil {
			return broken, errors.WrapError(err, errors.CategoryRender, "failed to inspect rendered page").
				WithContext("route", route).Build()
		}

		base := &url.URL{Path: route}
		for _, link := range links {
			if !isSiteLink(link.URL) {
				continue
			}
			target := resolve(base, link.URL)
			if target == "" || reachable(s, target) {
				continue
			}
			broken = append(broken, BrokenLink{Page: route, URL: link.URL, Target: target, Tag: link.Tag})
			slog.Debug("Broken internal link", logfields.Route(route), logfields.URL(link.URL))
		}
	}
	slog.Info("Link check complete", logfields.Count(len(broken)))
	return broken, nil
}

// resolve turns a link into the request path the server would see.
func resolve(base *url.URL, link string) string {
	ref, err := url.Parse(link)
	if err != nil {
		return ""
	}
	p := base.ResolveReference(ref).Path
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

func reachable(s *site.Site, target string) bool {
	routes := s.Routes()
	if target == sitemapPath || routes.Has(target) || routes.Has(target+"/") {
		return true
	}
	_, ok := s.ResolveStatic(target)
	return ok
}
