package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lockgrid/internal/logging"
	"github.com/aretw0/lockgrid/pkg/domain"
)

// createLogger configures the application logger.
// Below warn level it writes to errOut (to separate from Stdout grid output).
func createLogger(level string, errOut io.Writer) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if errOut == nil {
		return logging.NewNop(), nil
	}
	return logging.NewWithWriter(errOut, lvl), nil
}

// parseInstructions applies the boundary policy for raw instruction strings.
// In strict mode an unknown symbol is an error; otherwise it is dropped with a warning.
func parseInstructions(logger *slog.Logger, raw string, strict bool) (domain.Sequence, error) {
	if strict {
		seq, err := domain.ParseSequenceStrict(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid instructions: %w", err)
		}
		return seq, nil
	}

	seq := domain.ParseSequence(raw)
	if dropped := len([]rune(raw)) - len(seq); dropped > 0 {
		logger.Warn("Ignoring Unknown Instructions", "dropped", dropped, "raw", raw)
	}
	return seq, nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
