package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter(t *testing.T) {
	input := []byte("# Title\n\nBody\n")
	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Nil(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_WithFrontmatter(t *testing.T) {
	input := []byte("---\ntitle: Setup\n---\n# Heading\n")
	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Setup\n", string(fm))
	require.Equal(t, "# Heading\n", string(body))
}

func TestSplit_EmptyFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nbody"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "body", string(body))
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\ntitle: x\r\n---\r\nbody\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: x\r\n", string(fm))
	require.Equal(t, "body\r\n", string(body))
}

func TestSplit_ClosingAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: x\n", string(fm))
	require.Empty(t, body)
}

func TestSplit_MissingClosing(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: x\nno close\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestParse(t *testing.T) {
	doc := Parse([]byte("---\ntitle: \" Getting Started \"\ntags: [a]\n---\n# Intro\n"))
	require.True(t, doc.Had)
	require.Equal(t, "Getting Started", doc.Title())
	require.Equal(t, "# Intro\n", string(doc.Body))
}

func TestParse_FallsBackToWholeBody(t *testing.T) {
	unclosed := []byte("---\n\nA paragraph after a rule.\n")
	doc := Parse(unclosed)
	require.False(t, doc.Had)
	require.Equal(t, unclosed, doc.Body)
	require.Empty(t, doc.Title())

	invalid := []byte("---\n: : :\n---\nbody\n")
	doc = Parse(invalid)
	require.False(t, doc.Had)
	require.Equal(t, invalid, doc.Body)
}

func TestDocument_TitleNonString(t *testing.T) {
	doc := Parse([]byte("---\ntitle: 42\n---\nbody\n"))
	require.True(t, doc.Had)
	require.Empty(t, doc.Title())
}
