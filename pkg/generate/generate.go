// Package generate produces random grids and instruction strings for demos and tests.
package generate

import (
	"math/rand/v2"

	"github.com/aretw0/lockgrid/pkg/domain"
)

// Defaults mirror the classic demo: 5..10 cells per side, 30% occupancy
// and 3..10 instructions.
const (
	DefaultMinSide     = 5
	DefaultMaxSide     = 10
	DefaultOccupancy   = 0.3
	DefaultMinSequence = 3
	DefaultMaxSequence = 10
)

var alphabet = [domain.NumInstructions]domain.Instruction{domain.Left, domain.Up, domain.Right, domain.Down}

// Generator draws grids and sequences from a seeded source.
type Generator struct {
	rng       *rand.Rand
	MinSide   int
	MaxSide   int
	Occupancy float64
	MinSeq    int
	MaxSeq    int
}

// New returns a Generator with the default bounds. The same seed always
// yields the same stream of grids and sequences.
func New(seed uint64) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		MinSide:   DefaultMinSide,
		MaxSide:   DefaultMaxSide,
		Occupancy: DefaultOccupancy,
		MinSeq:    DefaultMinSequence,
		MaxSeq:    DefaultMaxSequence,
	}
}

// Grid returns a grid of random size with tokens "A", "B", ... placed in
// row-major order on randomly occupied cells.
func (g *Generator) Grid() *domain.Grid {
	w := g.Side()
	return g.GridOf(w, g.Side())
}

// Side returns a random grid dimension within [MinSide, MaxSide].
func (g *Generator) Side() int {
	return g.between(g.MinSide, g.MaxSide)
}

// GridOf returns a w×h grid with randomly occupied cells.
func (g *Generator) GridOf(w, h int) *domain.Grid {
	cells := make([]domain.Token, w*h)
	next := 'A'
	for i := range cells {
		if g.rng.Float64() < g.Occupancy {
			cells[i] = domain.Token(next)
			next++
		}
	}
	grid, err := domain.NewGrid(w, h, cells)
	if err != nil {
		panic(err)
	}
	return grid
}

// Sequence returns a random instruction sequence.
func (g *Generator) Sequence() domain.Sequence {
	return g.SequenceOf(g.between(g.MinSeq, g.MaxSeq))
}

// SequenceOf returns a random instruction sequence of exactly n instructions.
func (g *Generator) SequenceOf(n int) domain.Sequence {
	seq := make(domain.Sequence, n)
	for i := range seq {
		seq[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return seq
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
