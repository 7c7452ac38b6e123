package lockgrid_test

import (
	"fmt"

	"github.com/aretw0/lockgrid"
	"github.com/aretw0/lockgrid/pkg/domain"
	"github.com/aretw0/lockgrid/pkg/render"
)

func Example() {
	grid, err := domain.FromRows([][]domain.Token{
		{"A", domain.Empty, "B"},
		{domain.Empty, "C", domain.Empty},
	})
	if err != nil {
		panic(err)
	}

	eng := lockgrid.New()
	result, optimized := eng.Solve(grid, domain.ParseSequence("LLRUD"))

	fmt.Println(optimized)
	fmt.Print(render.Text(result))
	// Output:
	// RD
	// # # B
	// # A C
}
