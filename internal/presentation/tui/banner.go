package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the lockgrid banner to w using the given colour profile.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{" _            _               _     _ ", "#818cf8"},
		{"| | ___   ___| | ____ _ _ __(_) __| |", "#a78bfa"},
		{"| |/ _ \\ / __| |/ / _` | '__| |/ _` |", "#c084fc"},
		{"| | (_) | (__|   < (_| | |  | | (_| |", "#e879f9"},
		{"|_|\\___/ \\___|_|\\_\\__, |_|  |_|\\__,_|", "#f472b6"},
		{"                  |___/               ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
