package main

import (
	"errors"

	"github.com/aretw0/lockgrid/internal/cli"
	"github.com/aretw0/lockgrid/internal/config"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [instructions]",
	Short: "Apply an instruction string to a grid",
	Long: `Applies each L/R/U/D instruction to the grid in order and prints the result.

The grid comes either from a scenario file (--file) or from repeated --row
flags, one per row, with cells separated by spaces and "#" or "." for empty.`,
	Example: `  lockgrid run LR --row "A # B" --row "# C #"
  lockgrid run --file vault.yaml --optimize`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		rows, _ := cmd.Flags().GetStringArray("row")
		optimize, _ := cmd.Flags().GetBool("optimize")

		var instructions string
		if len(args) > 0 {
			instructions = args[0]
		}

		return withApp(cmd, func(app *cli.App) error {
			if file != "" {
				return app.RunScenarioFile(file, instructions, optimize)
			}
			if len(rows) == 0 {
				return errors.New("a grid is required: use --file or --row")
			}
			grid, err := config.ParseGrid(rows)
			if err != nil {
				return err
			}
			return app.Run(cli.RunRequest{Grid: grid, Instructions: instructions, Optimize: optimize})
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("file", "f", "", "Scenario file (YAML or JSON)")
	runCmd.Flags().StringArrayP("row", "r", nil, "Grid row, e.g. \"A # B\" (repeatable)")
	runCmd.Flags().BoolP("optimize", "o", false, "Optimize the instructions before running them")
}
