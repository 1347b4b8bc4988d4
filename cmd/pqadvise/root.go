package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pqadvise",
		Short: "pqadvise - advisory engine for post-quantum algorithm selection",
		Long: `pqadvise compares post-quantum cryptographic algorithms against weighted
criteria and deployment constraints, and produces ranked, justified
recommendations for a target environment.

It reasons about declared algorithm metadata only; it never performs
cryptographic operations.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newAdviseCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newNewCommand())
	cmd.AddCommand(newReportCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
