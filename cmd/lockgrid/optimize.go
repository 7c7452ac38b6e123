package main

import (
	"github.com/aretw0/lockgrid/internal/cli"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <instructions>",
	Short: "Print the shortest equivalent form of an instruction string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *cli.App) error {
			return app.Optimize(args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
