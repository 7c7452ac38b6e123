package runtime

import (
	"fmt"

	"github.com/aretw0/lockgrid/pkg/domain"
)

// Strategy selects how many reduction passes the optimizer performs.
type Strategy string

const (
	// StrategyTwoPass runs the reduction pass exactly twice.
	StrategyTwoPass Strategy = "two-pass"
	// StrategyFixedPoint repeats the reduction pass until the sequence stops shrinking.
	StrategyFixedPoint Strategy = "fixed-point"
)

// ParseStrategy validates a strategy name. An empty name selects StrategyTwoPass.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyTwoPass:
		return StrategyTwoPass, nil
	case StrategyFixedPoint:
		return StrategyFixedPoint, nil
	}
	return "", fmt.Errorf("unknown optimizer strategy %q (want %q or %q)", name, StrategyTwoPass, StrategyFixedPoint)
}

// Optimize removes redundant instructions using two reduction passes.
// Running the result on any grid produces the same grid as running seq.
func Optimize(seq domain.Sequence) domain.Sequence {
	return OptimizeWith(seq, StrategyTwoPass, domain.LifecycleHooks{})
}

// OptimizeWith runs the reduction passes selected by strategy.
// Unknown strategies fall back to StrategyTwoPass.
func OptimizeWith(seq domain.Sequence, strategy Strategy, hooks domain.LifecycleHooks) domain.Sequence {
	cur := seq
	for pass := 1; ; pass++ {
		next := OptimizePass(cur)
		if hooks.OnOptimizePass != nil {
			hooks.OnOptimizePass(&domain.OptimizeEvent{Pass: pass, Before: len(cur), After: len(next)})
		}
		shrunk := len(next) < len(cur)
		cur = next

		if strategy == StrategyFixedPoint {
			// A pass only removes instructions, so equal length means nothing changed.
			if !shrunk {
				return cur
			}
			continue
		}
		if pass == 2 {
			return cur
		}
	}
}

// OptimizePass performs a single left-to-right reduction over seq.
//
// An instruction is dropped when the next one is the same or its opposite,
// or when it already was the last instruction kept on its axis in that
// direction. Instructions outside the alphabet are dropped as well.
func OptimizePass(seq domain.Sequence) domain.Sequence {
	var calledLast [domain.NumInstructions]bool
	out := make(domain.Sequence, 0, len(seq))

	for i, cur := range seq {
		if !cur.Valid() {
			continue
		}
		opp := cur.Opposite()
		if i+1 < len(seq) {
			if next := seq[i+1]; next == cur || next == opp {
				continue
			}
		}
		if calledLast[cur] {
			continue
		}
		calledLast[cur] = true
		calledLast[opp] = false
		out = append(out, cur)
	}
	return out
}
