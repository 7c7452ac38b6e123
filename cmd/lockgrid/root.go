package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lockgrid/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lockgrid",
	Short: "lockgrid compacts tokens on a grid and optimizes instruction strings",
	Long: `lockgrid slides every token of a grid towards an edge for each L/R/U/D
instruction, and shortens instruction strings without changing their outcome.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("format", "plain", "Grid output format (plain, bracketed, markdown)")
	flags.String("color", "auto", "Colorize output (auto, always, never)")
	flags.String("markdown-style", "", "Glamour style for markdown output (dark, light, notty, ...)")
	flags.String("strategy", "two-pass", "Optimizer strategy (two-pass, fixed-point)")
	flags.Bool("strict", false, "Reject unknown instruction symbols instead of ignoring them")
	flags.Bool("metrics", false, "Print Prometheus metrics to stderr when done")
}

// withApp builds the App from the persistent flags, runs fn and flushes metrics.
func withApp(cmd *cobra.Command, fn func(*cli.App) error) error {
	flags := cmd.Flags()
	opts := cli.Options{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}
	opts.LogLevel, _ = flags.GetString("log-level")
	opts.Format, _ = flags.GetString("format")
	opts.Color, _ = flags.GetString("color")
	opts.MarkdownStyle, _ = flags.GetString("markdown-style")
	opts.Strategy, _ = flags.GetString("strategy")
	opts.Strict, _ = flags.GetBool("strict")
	opts.Metrics, _ = flags.GetBool("metrics")

	app, err := cli.NewApp(opts)
	if err != nil {
		return err
	}
	if err := fn(app); err != nil {
		return err
	}
	return app.Close()
}
