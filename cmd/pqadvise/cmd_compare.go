package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pqc-tools/pqadvise/internal/models"
)

func newCompareCommand() *cobra.Command {
	var (
		catalogPath  string
		criteriaPath string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "compare <profile1.yaml> <profile2.yaml> [profile3.yaml ...]",
		Short: "Compare rankings across multiple deployment profiles",
		Long: `Run an advisory for each profile against the same catalog snapshot and
show, per algorithm, how its rank and weighted total shift between profiles.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareCommandE(cmd, args, catalogPath, criteriaPath, format)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	cmd.Flags().StringVar(&criteriaPath, "criteria", "", "Criteria YAML file (default: built-in weights)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

// algorithmComparison holds one algorithm's placement across profiles.
// A nil entry means the algorithm was rejected under that profile.
type algorithmComparison struct {
	AlgorithmID string    `json:"algorithm_id"`
	Ranks       []int     `json:"ranks"`
	Totals      []float64 `json:"totals"`
	Rejections  []string  `json:"rejections"`
}

// comparisonReport is the full comparison output.
type comparisonReport struct {
	Profiles   []string              `json:"profiles"`
	Algorithms []algorithmComparison `json:"algorithms"`
}

func compareCommandE(cmd *cobra.Command, args []string, catalogPath, criteriaPath, format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}

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

	report := buildComparisonReport(advisories)

	if format == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal comparison report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data)) //nolint:errcheck
		return nil
	}

	printComparisonTable(cmd, report)
	return nil
}

func buildComparisonReport(advisories []*models.Advisory) *comparisonReport {
	report := &comparisonReport{}
	for _, adv := range advisories {
		report.Profiles = append(report.Profiles, adv.Profile.Name)
	}

	// Preserve first-seen order across all advisories for determinism.
	var ids []string
	seen := make(map[string]bool)
	for _, adv := range advisories {
		for _, r := range adv.Ranked {
			if !seen[r.AlgorithmID] {
				seen[r.AlgorithmID] = true
				ids = append(ids, r.AlgorithmID)
			}
		}
		for _, rej := range adv.Rejected {
			if !seen[rej.AlgorithmID] {
				seen[rej.AlgorithmID] = true
				ids = append(ids, rej.AlgorithmID)
			}
		}
	}

	for _, id := range ids {
		ac := algorithmComparison{AlgorithmID: id}
		for _, adv := range advisories {
			rank, total, rejection := 0, 0.0, ""
			for _, r := range adv.Ranked {
				if r.AlgorithmID == id {
					rank, total = r.Rank, r.WeightedTotal
					break
				}
			}
			if rank == 0 {
				rejection = "n/a"
				for _, rej := range adv.Rejected {
					if rej.AlgorithmID == id {
						rejection = string(rej.Reason)
						break
					}
				}
			}
			ac.Ranks = append(ac.Ranks, rank)
			ac.Totals = append(ac.Totals, total)
			ac.Rejections = append(ac.Rejections, rejection)
		}
		report.Algorithms = append(report.Algorithms, ac)
	}

	return report
}

func printComparisonTable(cmd *cobra.Command, r *comparisonReport) {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintln(w, " PROFILE COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintln(w)

	for i, p := range r.Profiles {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, p)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s", padRight("Algorithm", 26))
	for i := range r.Profiles {
		fmt.Fprintf(w, "  [%d] Rank/Total    ", i+1)
	}
	fmt.Fprintln(w)

	for _, ac := range r.Algorithms {
		fmt.Fprintf(w, "  %s", padRight(truncateName(ac.AlgorithmID, 26), 26))
		for i := range r.Profiles {
			var cell string
			if ac.Ranks[i] > 0 {
				cell = fmt.Sprintf("#%d %.3f", ac.Ranks[i], ac.Totals[i])
			} else {
				cell = ac.Rejections[i]
			}
			fmt.Fprintf(w, "  %s", padRight(truncateName(cell, 18), 18))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
