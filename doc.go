/*
Package lockgrid simulates gravity-style compaction of tokens on a 2D grid and
shortens instruction sequences without changing their outcome.

A grid holds tokens and empty cells. An instruction (L, R, U or D) slides
every token in each row or column as far as it can towards that edge,
closing gaps and keeping the tokens in their original order. A sequence of
instructions is applied left to right.

The optimizer removes instructions whose effect is overwritten by the next
one on the same axis, or that repeat the last surviving instruction on their
axis. Running the optimized sequence on any grid yields exactly the grid the
original sequence would.

# Usage

	eng := lockgrid.New(lockgrid.WithLogger(logger))

	grid, err := domain.FromRows([][]domain.Token{
		{"A", domain.Empty, "B"},
		{domain.Empty, "C", domain.Empty},
	})
	if err != nil {
		log.Fatal(err)
	}

	seq := domain.ParseSequence("LLRUD")
	result, optimized := eng.Solve(grid, seq)
	fmt.Print(render.Text(result))
	fmt.Println(optimized) // "RD"

# Observability

Lifecycle hooks (see domain.LifecycleHooks) fire after each instruction is
applied and after each optimizer pass. The CLI wires them to slog and to
Prometheus counters.
*/
package lockgrid
