package main

import (
	"time"

	"github.com/aretw0/lockgrid/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random grid and instruction string",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := generateRequest(cmd)
		return withApp(cmd, func(app *cli.App) error {
			return app.Generate(req)
		})
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run random instructions on a random grid, as given and optimized",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := generateRequest(cmd)
		return withApp(cmd, func(app *cli.App) error {
			return app.Demo(req)
		})
	},
}

func generateRequest(cmd *cobra.Command) cli.GenerateRequest {
	seed, _ := cmd.Flags().GetUint64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	return cli.GenerateRequest{Seed: seed, Width: width, Height: height}
}

func init() {
	for _, c := range []*cobra.Command{generateCmd, demoCmd} {
		rootCmd.AddCommand(c)
		c.Flags().Uint64("seed", 0, "Random seed (default: current time)")
		c.Flags().Int("width", 0, "Grid width (default: random 5-10)")
		c.Flags().Int("height", 0, "Grid height (default: random 5-10)")
	}
}
