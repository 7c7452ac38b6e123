package domain

import (
	"fmt"
	"slices"
)

// Token is the opaque value held by an occupied cell.
type Token string

// Empty marks a cell with no token.
const Empty Token = ""

// IsEmpty reports whether the cell holds no token.
func (t Token) IsEmpty() bool {
	return t == Empty
}

// Grid is a rectangular arrangement of cells stored row-major in a single buffer.
// Its dimensions never change once constructed.
type Grid struct {
	width  int
	height int
	cells  []Token
}

// NewGrid builds a Grid of w columns and h rows from cells laid out row-major.
// The cells slice is copied.
func NewGrid(w, h int, cells []Token) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrCellCount, len(cells), w, h)
	}
	return &Grid{width: w, height: h, cells: slices.Clone(cells)}, nil
}

// EmptyGrid returns a w×h grid with every cell empty.
// It panics if either dimension is below 1.
func EmptyGrid(w, h int) *Grid {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("domain: invalid grid dimensions %dx%d", w, h))
	}
	return &Grid{width: w, height: h, cells: make([]Token, w*h)}
}

// FromRows builds a Grid from nested rows. All rows must share the same non-zero length.
func FromRows(rows [][]Token) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidDimensions)
	}
	cells := make([]Token, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrJaggedGrid, i, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid{width: w, height: len(rows), cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the token at the given row and column.
func (g *Grid) At(row, col int) Token {
	return g.cells[g.index(row, col)]
}

// Set stores a token at the given row and column.
func (g *Grid) Set(row, col int, t Token) {
	g.cells[g.index(row, col)] = t
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("domain: cell (%d,%d) out of range for %dx%d grid", row, col, g.width, g.height))
	}
	return row*g.width + col
}

// Row returns a copy of the given row.
func (g *Grid) Row(row int) []Token {
	start := g.index(row, 0)
	return slices.Clone(g.cells[start : start+g.width])
}

// Rows returns a deep copy of the grid as nested rows.
func (g *Grid) Rows() [][]Token {
	rows := make([][]Token, g.height)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.width == other.width && g.height == other.height && slices.Equal(g.cells, other.cells)
}
