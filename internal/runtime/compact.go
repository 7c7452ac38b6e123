package runtime

import (
	"github.com/aretw0/lockgrid/pkg/domain"
)

// Compact slides every occupied cell of g as far as possible towards the edge
// named by in, closing gaps and keeping the relative order of the cells in
// each row (Left/Right) or column (Up/Down). The input grid is not modified.
// An invalid instruction yields an unchanged copy.
func Compact(g *domain.Grid, in domain.Instruction) *domain.Grid {
	out, _ := compact(g, in)
	return out
}

// compact also reports how many occupied cells changed position.
func compact(g *domain.Grid, in domain.Instruction) (*domain.Grid, int) {
	if !in.Valid() {
		return g.Clone(), 0
	}

	w, h := g.Width(), g.Height()
	out := domain.EmptyGrid(w, h)
	moved := 0

	// lines are rows for Left/Right and columns for Up/Down.
	// Each line is scanned from the target edge inwards and packed against it.
	lines, length := h, w
	if in.Axis() == domain.Vertical {
		lines, length = w, h
	}
	toward := in == domain.Left || in == domain.Up

	for line := 0; line < lines; line++ {
		next := 0
		for k := 0; k < length; k++ {
			src := k
			if !toward {
				src = length - 1 - k
			}
			row, col := cellAt(in, line, src)
			item := g.At(row, col)
			if item.IsEmpty() {
				continue
			}
			dst := next
			if !toward {
				dst = length - 1 - next
			}
			if dst != src {
				moved++
			}
			dr, dc := cellAt(in, line, dst)
			out.Set(dr, dc, item)
			next++
		}
	}
	return out, moved
}

// cellAt maps a (line, offset) pair to grid coordinates for the instruction's axis.
func cellAt(in domain.Instruction, line, offset int) (row, col int) {
	if in.Axis() == domain.Vertical {
		return offset, line
	}
	return line, offset
}
