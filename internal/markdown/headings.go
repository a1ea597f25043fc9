package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is a document heading with the anchor id the converter assigns it.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// headingParser mirrors the converter's block syntax so ids line up with rendered output.
var headingParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.DefinitionList, extension.Footnote),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// ExtractHeadings lists headings up to maxLevel in document order.
func ExtractHeadings(md []byte, maxLevel int) []Heading {
	root := headingParser.Parser().Parse(text.NewReader(md))

	var headings []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if h.Level <= maxLevel {
			headings = append(headings, Heading{
				Level:  h.Level,
				Text:   nodeText(h, md),
				Anchor: headingID(h),
			})
		}
		return gmast.WalkSkipChildren, nil
	})
	return headings
}

func headingID(h *gmast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

func nodeText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
