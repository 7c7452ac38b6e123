package render

import (
	"bytes"
	"testing"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGrid(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.FromRows([][]domain.Token{
		{"A", domain.Empty, "B"},
		{domain.Empty, "C", domain.Empty},
	})
	require.NoError(t, err)
	return g
}

func TestText(t *testing.T) {
	assert.Equal(t, "A # B\n# C #\n", Text(sampleGrid(t)))
}

func TestBracketed(t *testing.T) {
	assert.Equal(t, "[ \n  A # B\n  # C #\n ]\n", Bracketed(sampleGrid(t)))
}

func TestWrite_Formats(t *testing.T) {
	g := sampleGrid(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, Options{}))
	assert.Equal(t, Text(g), buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, g, Options{Format: FormatBracketed}))
	assert.Equal(t, Bracketed(g), buf.String())

	buf.Reset()
	err := Write(&buf, g, Options{Format: "svg"})
	assert.ErrorContains(t, err, "svg")
}

func TestWrite_Color(t *testing.T) {
	g := sampleGrid(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, Options{Color: true, Profile: termenv.ANSI256}))
	out := buf.String()

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "A")
	assert.NotEqual(t, Text(g), out)
}

func TestMarkdownTable(t *testing.T) {
	want := "| 0 | 1 | 2 |\n" +
		"| :-: | :-: | :-: |\n" +
		"| A | \\# | B |\n" +
		"| \\# | C | \\# |\n"
	assert.Equal(t, want, MarkdownTable(sampleGrid(t)))
}

func TestMarkdown_Renders(t *testing.T) {
	out, err := Markdown(sampleGrid(t), "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "C")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	f, err = ParseFormat("markdown")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("html")
	assert.Error(t, err)
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, termenv.Ascii, ProfileFor(ColorNever, nil))
	assert.Equal(t, termenv.Ascii, ProfileFor(ColorAuto, nil))
	assert.Equal(t, termenv.ANSI256, ProfileFor(ColorAlways, nil))
}
