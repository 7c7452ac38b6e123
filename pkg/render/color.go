package render

import (
	"os"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	tokenColor = "#c084fc"
	emptyColor = "#6b7280"
)

// ColorMode is the user's colour preference.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ProfileFor resolves a colour mode for the given output file.
// In auto mode colour is only used when f is a terminal.
func ProfileFor(mode ColorMode, f *os.File) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if f == nil {
			return termenv.ANSI256
		}
		if p := termenv.NewOutput(f).EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func colorize(p termenv.Profile, t domain.Token) string {
	s := Cell(t)
	if p == termenv.Ascii {
		return s
	}
	style := p.String(s)
	if t.IsEmpty() {
		return style.Foreground(p.Color(emptyColor)).Faint().String()
	}
	return style.Foreground(p.Color(tokenColor)).Bold().String()
}
