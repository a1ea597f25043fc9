package markdown

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	titlePrefix = "# "
	homeTitle   = "Home"
)

// ExtractTitle returns the text of the first level-1 heading in md.
//
// When md has no such heading the title is derived from filename: the last
// extension is removed, "index" becomes "Home" and any other stem gets its first
// character capitalized with the rest left untouched.
func ExtractTitle(md, filename string) string {
	for line := range strings.SplitSeq(md, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, titlePrefix) {
			return strings.TrimSpace(line[len(titlePrefix):])
		}
	}
	return TitleFromFilename(filename)
}

// TitleFromFilename derives a display title from a file name.
func TitleFromFilename(filename string) string {
	name := filepath.Base(filename)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	if name == "index" {
		return homeTitle
	}
	return capitalizeFirst(name)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Title(language.Und).String(string(r)) + s[size:]
}
