package runtime

import (
	"testing"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/aretw0/lockgrid/pkg/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_Scenarios(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"L", "L"},
		{"LR", "R"},
		{"LU", "LU"},
		{"LLRR", "R"},
		{"LRL", "L"},
		{"LUL", "LU"},
		{"LURUL", "LU"},
		{"UDUDL", "DL"},
		{"RLUR", "LUR"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Optimize(domain.ParseSequence(tt.in))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOptimizePass_SinglePassIsNotEnough(t *testing.T) {
	seq := domain.ParseSequence("LURUL")

	first := OptimizePass(seq)
	assert.Equal(t, "LURL", first.String())
	assert.Equal(t, "LU", OptimizePass(first).String())
}

func TestOptimizePass_DropsInvalid(t *testing.T) {
	seq := domain.Sequence{domain.Left, domain.Instruction(9), domain.Up}
	assert.Equal(t, "LU", OptimizePass(seq).String())
}

func TestOptimizeWith_Hooks(t *testing.T) {
	seq := domain.ParseSequence("LURUL")

	var twoPass []domain.OptimizeEvent
	OptimizeWith(seq, StrategyTwoPass, domain.LifecycleHooks{
		OnOptimizePass: func(e *domain.OptimizeEvent) { twoPass = append(twoPass, *e) },
	})
	assert.Equal(t, []domain.OptimizeEvent{
		{Pass: 1, Before: 5, After: 4},
		{Pass: 2, Before: 4, After: 2},
	}, twoPass)

	var fixed []domain.OptimizeEvent
	got := OptimizeWith(seq, StrategyFixedPoint, domain.LifecycleHooks{
		OnOptimizePass: func(e *domain.OptimizeEvent) { fixed = append(fixed, *e) },
	})
	assert.Equal(t, "LU", got.String())
	require.Len(t, fixed, 3)
	assert.Zero(t, fixed[2].Eliminated())
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyTwoPass, s)

	s, err = ParseStrategy("fixed-point")
	require.NoError(t, err)
	assert.Equal(t, StrategyFixedPoint, s)

	_, err = ParseStrategy("greedy")
	assert.ErrorContains(t, err, "greedy")
}

func TestOptimize_Properties(t *testing.T) {
	gen := generate.New(7)
	none := domain.LifecycleHooks{}

	for i := 0; i < 500; i++ {
		g := gen.Grid()
		seq := gen.SequenceOf(i % 24)

		for _, strategy := range []Strategy{StrategyTwoPass, StrategyFixedPoint} {
			opt := OptimizeWith(seq, strategy, none)

			require.LessOrEqual(t, len(opt), len(seq), "%s expanded %q", strategy, seq)
			require.True(t, Run(g, seq, none).Equal(Run(g, opt, none)),
				"%s changed the result of %q (optimized to %q)", strategy, seq, opt)
		}

		fixed := OptimizeWith(seq, StrategyFixedPoint, none)
		assert.Equal(t, fixed, OptimizeWith(fixed, StrategyFixedPoint, none), "fixed point for %q", seq)
	}
}
