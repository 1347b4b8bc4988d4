package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pqc-tools/pqadvise/internal/export"
)

func newAdviseCommand() *cobra.Command {
	var (
		catalogPath  string
		criteriaPath string
		format       string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "advise <profile.yaml>",
		Short: "Produce a ranked recommendation for a deployment profile",
		Long: `Filter the catalog against a deployment profile's hard constraints, score
the feasible algorithms against the weighted criteria, and print the ranked
recommendation with a per-criterion breakdown.

Exits with code 1 when no algorithm satisfies the profile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return adviseCommandE(cmd, args[0], catalogPath, criteriaPath, format, outputPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	cmd.Flags().StringVar(&criteriaPath, "criteria", "", "Criteria YAML file (default: built-in weights)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write JSON result to a file (.gz compresses)")

	return cmd
}

func adviseCommandE(cmd *cobra.Command, profilePath, catalogPath, criteriaPath, format, outputPath string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}

	adv, err := runAdvisory(profilePath, catalogPath, criteriaPath)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := export.WriteJSON(outputPath, adv); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath) //nolint:errcheck
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(adv, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal advisory: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data)) //nolint:errcheck
	default:
		printAdvisoryTable(cmd.OutOrStdout(), adv)
	}

	if adv.NoCandidate {
		return &NoCandidateError{Profile: adv.Profile.Name}
	}
	return nil
}
