package runtime

import (
	"testing"

	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRun_ThreadsGrid(t *testing.T) {
	g := gridOf(t, "A#B", "#C#")

	got := Run(g, domain.Sequence{domain.Left, domain.Right}, domain.LifecycleHooks{})

	assert.True(t, gridOf(t, "#AB", "##C").Equal(got))
	assert.True(t, gridOf(t, "A#B", "#C#").Equal(g))
}

func TestRun_EmptySequence(t *testing.T) {
	g := gridOf(t, "A#", "#B")
	got := Run(g, nil, domain.LifecycleHooks{})

	assert.True(t, g.Equal(got))
	assert.NotSame(t, g, got)
}

func TestRun_SkipsInvalidInstructions(t *testing.T) {
	g := gridOf(t, "#A#", "B##")
	var steps []int
	hooks := domain.LifecycleHooks{
		OnCompact: func(e *domain.CompactEvent) { steps = append(steps, e.Step) },
	}

	got := Run(g, domain.Sequence{domain.Instruction(7), domain.Down, domain.Instruction(99)}, hooks)

	assert.True(t, gridOf(t, "###", "BA#").Equal(got))
	assert.Equal(t, []int{1}, steps)
}

func TestRunString_Lenient(t *testing.T) {
	g := gridOf(t, "A#B", "#C#")
	var applied []domain.Instruction
	hooks := domain.LifecycleHooks{
		OnCompact: func(e *domain.CompactEvent) { applied = append(applied, e.Instruction) },
	}

	got := RunString(g, "L?x R", hooks)

	assert.True(t, gridOf(t, "#AB", "##C").Equal(got))
	assert.Equal(t, []domain.Instruction{domain.Left, domain.Right}, applied)
}
