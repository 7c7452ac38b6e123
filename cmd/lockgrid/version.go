package main

import (
	"fmt"

	"github.com/aretw0/lockgrid"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lockgrid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lockgrid version %s\n", lockgrid.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
