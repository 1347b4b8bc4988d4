package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pqc-tools/pqadvise/internal/export"
	"github.com/pqc-tools/pqadvise/internal/models"
)

func newBatchCommand() *cobra.Command {
	var (
		catalogPath  string
		criteriaPath string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "batch <profile.yaml> [profile2.yaml ...]",
		Short: "Run advisories for multiple profiles concurrently",
		Long: `Run one advisory per profile against a single catalog snapshot. Profiles
are evaluated in parallel; the catalog and criteria are read-only, so no
request can observe another's state. Results print in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return batchCommandE(cmd, args, catalogPath, criteriaPath, outputPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	cmd.Flags().StringVar(&criteriaPath, "criteria", "", "Criteria YAML file (default: built-in weights)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write JSON results to a file (.gz compresses)")

	return cmd
}

func batchCommandE(cmd *cobra.Command, args []string, catalogPath, criteriaPath, outputPath string) error {
	profiles := make([]*models.DeploymentProfile, 0, len(args))
	for _, path := range args {
		p, err := models.LoadProfile(path)
		if err != nil {
			return fmt.Errorf("loading profile %s: %w", path, err)
		}
		profiles = append(profiles, p)
	}

	eng, err := resolveAdvisor(catalogPath, criteriaPath)
	if err != nil {
		return err
	}

	advisories, err := eng.AdviseAll(cmd.Context(), profiles)
	if err != nil {
		return err
	}

	for _, adv := range advisories {
		printAdvisoryTable(cmd.OutOrStdout(), adv)
	}

	if outputPath != "" {
		if err := export.WriteJSON(outputPath, advisories); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath) //nolint:errcheck
	}

	return nil
}
