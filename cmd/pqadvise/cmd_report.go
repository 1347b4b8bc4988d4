package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pqc-tools/pqadvise/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		catalogPath  string
		criteriaPath string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "report <profile.yaml>",
		Short: "Render an advisory as a markdown or HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportCommandE(cmd, args[0], catalogPath, criteriaPath, format)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	cmd.Flags().StringVar(&criteriaPath, "criteria", "", "Criteria YAML file (default: built-in weights)")
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: markdown or html")

	return cmd
}

func reportCommandE(cmd *cobra.Command, profilePath, catalogPath, criteriaPath, format string) error {
	if format != "markdown" && format != "html" {
		return fmt.Errorf("unsupported format %q: must be markdown or html", format)
	}

	adv, err := runAdvisory(profilePath, catalogPath, criteriaPath)
	if err != nil {
		return err
	}

	switch format {
	case "html":
		html, err := report.HTML(adv)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), html) //nolint:errcheck
	default:
		fmt.Fprint(cmd.OutOrStdout(), report.Markdown(adv)) //nolint:errcheck
	}

	if adv.NoCandidate {
		return &NoCandidateError{Profile: adv.Profile.Name}
	}
	return nil
}
