package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		cells   []Token
		wantErr error
	}{
		{name: "valid", w: 2, h: 1, cells: []Token{"A", Empty}},
		{name: "zero width", w: 0, h: 1, cells: nil, wantErr: ErrInvalidDimensions},
		{name: "negative height", w: 1, h: -1, cells: nil, wantErr: ErrInvalidDimensions},
		{name: "too few cells", w: 2, h: 2, cells: []Token{"A"}, wantErr: ErrCellCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.w, tt.h, tt.cells)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, g.Width())
			assert.Equal(t, tt.h, g.Height())
		})
	}
}

func TestNewGrid_CopiesCells(t *testing.T) {
	cells := []Token{"A", "B"}
	g, err := NewGrid(2, 1, cells)
	require.NoError(t, err)

	cells[0] = "Z"
	assert.Equal(t, Token("A"), g.At(0, 0))
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]Token{
		{"A", Empty, "B"},
		{Empty, "C", Empty},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, Token("C"), g.At(1, 1))
	assert.Equal(t, 3, g.Occupied())

	_, err = FromRows([][]Token{{"A", "B"}, {"C"}})
	assert.ErrorIs(t, err, ErrJaggedGrid)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = FromRows([][]Token{{}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestGrid_RowsAreCopies(t *testing.T) {
	g, err := FromRows([][]Token{{"A", "B"}})
	require.NoError(t, err)

	rows := g.Rows()
	rows[0][0] = "X"
	assert.Equal(t, Token("A"), g.At(0, 0))
}

func TestGrid_CloneAndEqual(t *testing.T) {
	g, err := FromRows([][]Token{{"A", Empty}, {Empty, "B"}})
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.Set(0, 1, "Q")
	assert.False(t, g.Equal(c))
	assert.Equal(t, Empty, g.At(0, 1))

	other, err := FromRows([][]Token{{"A", Empty, Empty, "B"}})
	require.NoError(t, err)
	assert.False(t, g.Equal(other), "same cells, different shape")

	var nilGrid *Grid
	assert.False(t, g.Equal(nilGrid))
	assert.True(t, nilGrid.Equal(nil))
}

func TestGrid_OutOfRangePanics(t *testing.T) {
	g := EmptyGrid(2, 2)
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
	assert.Panics(t, func() { EmptyGrid(0, 3) })
}
