// Package render turns grids into human-readable text.
//
// Empty cells display as "#", occupied cells as their token, one line per
// row with cells separated by a single space.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/muesli/termenv"
)

// EmptySymbol is how an empty cell is displayed.
const EmptySymbol = "#"

// Format selects the layout used by Write.
type Format string

const (
	FormatPlain     Format = "plain"
	FormatBracketed Format = "bracketed"
	FormatMarkdown  Format = "markdown"
)

// ParseFormat validates a format name. An empty name selects FormatPlain.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatBracketed, FormatMarkdown:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown render format %q", name)
}

// Options configure Write.
type Options struct {
	Format Format

	// Color enables ANSI colouring of plain and bracketed output using Profile.
	Color   bool
	Profile termenv.Profile

	// MarkdownStyle is a glamour standard style name; empty means auto-detect.
	MarkdownStyle string
}

// Cell returns the display text of a single cell.
func Cell(t domain.Token) string {
	if t.IsEmpty() {
		return EmptySymbol
	}
	return string(t)
}

// Lines renders each row of g as one line.
func Lines(g *domain.Grid) []string {
	return lines(g, termenv.Ascii)
}

// Text renders g as newline-terminated plain lines.
func Text(g *domain.Grid) string {
	return strings.Join(Lines(g), "\n") + "\n"
}

// Bracketed renders g wrapped in brackets with each row indented by two spaces.
func Bracketed(g *domain.Grid) string {
	return bracketed(lines(g, termenv.Ascii))
}

func bracketed(rows []string) string {
	var sb strings.Builder
	sb.WriteString("[ \n")
	for _, row := range rows {
		sb.WriteString("  ")
		sb.WriteString(row)
		sb.WriteString("\n")
	}
	sb.WriteString(" ]\n")
	return sb.String()
}

// Write renders g to w according to opts.
func Write(w io.Writer, g *domain.Grid, opts Options) error {
	profile := termenv.Ascii
	if opts.Color {
		profile = opts.Profile
	}

	var out string
	switch opts.Format {
	case "", FormatPlain:
		out = strings.Join(lines(g, profile), "\n") + "\n"
	case FormatBracketed:
		out = bracketed(lines(g, profile))
	case FormatMarkdown:
		md, err := Markdown(g, opts.MarkdownStyle)
		if err != nil {
			return err
		}
		out = md
	default:
		return fmt.Errorf("unknown render format %q", opts.Format)
	}
	_, err := io.WriteString(w, out)
	return err
}

func lines(g *domain.Grid, p termenv.Profile) []string {
	out := make([]string, g.Height())
	cells := make([]string, g.Width())
	for r := range out {
		for c := range cells {
			cells[c] = colorize(p, g.At(r, c))
		}
		out[r] = strings.Join(cells, " ")
	}
	return out
}
