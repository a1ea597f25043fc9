package markdown

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Options configures the markdown converter.
type Options struct {
	// HighlightStyle is a chroma style name. Empty disables syntax highlighting.
	HighlightStyle string
	// Sanitize runs converted HTML through a UGC policy.
	Sanitize bool
}

// Converter turns markdown into HTML. It is safe for concurrent use.
type Converter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewConverter builds a converter with tables, fenced code, definition lists,
// footnotes and stable heading ids enabled.
func NewConverter(opts Options) *Converter {
	exts := []goldmark.Extender{
		extension.GFM, // tables, strikethrough, autolinks, task lists
		extension.DefinitionList,
		extension.Footnote,
	}
	if opts.HighlightStyle != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
			highlighting.WithFormatOptions(),
		))
	}

	c := &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
	if opts.Sanitize {
		c.policy = newDocPolicy()
	}
	return c
}

// Convert renders markdown source to an HTML fragment.
func (c *Converter) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	if c.policy != nil {
		return c.policy.Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}

var codeClass = regexp.MustCompile(`^language-[\w+-]+$`)

func newDocPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "li", "sup", "div")
	policy.AllowAttrs("class").Matching(codeClass).OnElements("code")
	policy.AllowAttrs("class").OnElements("div", "sup", "a", "hr", "ol", "li")
	policy.AllowAttrs("role").OnElements("a", "div")
	policy.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration").
		OnElements("span", "pre")
	return policy
}
