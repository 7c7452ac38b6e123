package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is requested with a width or height below 1.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// ErrJaggedGrid is returned when the rows of a grid do not all share the same length.
var ErrJaggedGrid = errors.New("jagged grid rows")

// ErrCellCount is returned when the number of cells does not match width*height.
var ErrCellCount = errors.New("cell count does not match dimensions")

// InvalidInstructionError reports a symbol outside the L/R/U/D alphabet.
type InvalidInstructionError struct {
	Position int  // Byte offset in the raw instruction string
	Symbol   rune // The offending character
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %q at position %d", e.Symbol, e.Position)
}
