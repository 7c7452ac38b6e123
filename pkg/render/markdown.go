package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// MarkdownTable renders g as a Markdown table with column indices as the header.
func MarkdownTable(g *domain.Grid) string {
	var sb strings.Builder
	header := make([]string, g.Width())
	sep := make([]string, g.Width())
	for c := range header {
		header[c] = strconv.Itoa(c)
		sep[c] = ":-:"
	}
	writeRow(&sb, header)
	writeRow(&sb, sep)

	cells := make([]string, g.Width())
	for r := 0; r < g.Height(); r++ {
		for c := range cells {
			cells[c] = Cell(g.At(r, c))
			if cells[c] == EmptySymbol {
				cells[c] = `\#`
			}
		}
		writeRow(&sb, cells)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |\n")
}

// Markdown renders g as a Markdown table through glamour.
// style is a glamour standard style name ("dark", "light", "notty", ...);
// empty selects a style based on the terminal background.
func Markdown(g *domain.Grid, style string) (string, error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(MarkdownTable(g))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
