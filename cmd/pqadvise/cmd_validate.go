package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pqc-tools/pqadvise/internal/validation"
)

func newValidateCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "validate <file.yaml> [file2.yaml ...]",
		Short: "Validate catalog, profile, or criteria files against their schemas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCommandE(cmd, args, kind)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "profile", "Document kind: catalog, profile, or criteria")

	return cmd
}

func validateCommandE(cmd *cobra.Command, args []string, kind string) error {
	docKind := validation.DocKind(kind)
	switch docKind {
	case validation.DocCatalog, validation.DocProfile, validation.DocCriteria:
	default:
		return fmt.Errorf("unknown document kind %q: must be catalog, profile, or criteria", kind)
	}

	failed := 0
	for _, path := range args {
		errs, err := validation.ValidateFile(docKind, path)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "OK    %s\n", path) //nolint:errcheck
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s\n", path) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", e) //nolint:errcheck
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	return nil
}
