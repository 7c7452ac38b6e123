package runtime

import (
	"github.com/aretw0/lockgrid/pkg/domain"
)

// Run applies each instruction of seq to g in order, threading the output of
// one step into the next. Instructions outside the alphabet are skipped.
// The input grid is never modified; an empty sequence yields a copy of g.
func Run(g *domain.Grid, seq domain.Sequence, hooks domain.LifecycleHooks) *domain.Grid {
	cur := g.Clone()
	for step, in := range seq {
		if !in.Valid() {
			continue
		}
		var moved int
		cur, moved = compact(cur, in)
		if hooks.OnCompact != nil {
			hooks.OnCompact(&domain.CompactEvent{Step: step, Instruction: in, Moved: moved})
		}
	}
	return cur
}

// RunString parses raw leniently and runs the resulting sequence.
func RunString(g *domain.Grid, raw string, hooks domain.LifecycleHooks) *domain.Grid {
	return Run(g, domain.ParseSequence(raw), hooks)
}
