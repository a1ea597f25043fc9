// Package frontmatter separates optional YAML frontmatter from markdown sources.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a markdown source split into its frontmatter fields and body.
type Document struct {
	Fields map[string]any
	Body   []byte
	Had    bool
}

// Title returns the frontmatter title, or "" when absent or not a string.
func (d Document) Title() string {
	v, ok := d.Fields["title"].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	frontmatterStart := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[frontmatterStart:], closeLine) {
		return []byte{}, content[frontmatterStart+len(closeLine):], true, nil
	}

	rest := content[frontmatterStart:]
	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Closing delimiter at end of file without a trailing newline.
		if bytes.HasSuffix(rest, []byte(nl+"---")) {
			end := frontmatterStart + len(rest) - len(nl+"---")
			return content[frontmatterStart : end+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	frontmatterEnd := frontmatterStart + idx + len(nl)
	bodyStart := frontmatterStart + idx + len(closeSeq)
	return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, nil
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Parse splits and decodes content. Sources whose leading `---` block is not
// closed or is not valid YAML are returned whole as body, since a leading
// thematic break is legal markdown.
func Parse(content []byte) Document {
	fm, body, had, err := Split(content)
	if err != nil || !had {
		return Document{Fields: map[string]any{}, Body: content}
	}
	fields, err := ParseYAML(fm)
	if err != nil {
		return Document{Fields: map[string]any{}, Body: content}
	}
	return Document{Fields: fields, Body: body, Had: true}
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
