package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCommand() *cobra.Command {
	var (
		catalogPath string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the active algorithm catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalogCommandE(cmd, catalogPath, format)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func catalogCommandE(cmd *cobra.Command, catalogPath, format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}

	cat, err := resolveCatalog(catalogPath)
	if err != nil {
		return err
	}

	if format == "json" {
		data, err := json.MarshalIndent(cat.All(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data)) //nolint:errcheck
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %s  %s  %s  %s  %s  %s  %s\n",
		padRight("Algorithm", 26), padRight("Family", 12), padRight("Role", 17),
		padRight("Bits", 4), padRight("PubKey", 8), padRight("Output", 8), "Status")
	for _, alg := range cat.All() {
		fmt.Fprintf(w, "  %s  %s  %s  %s  %s  %s  %s\n",
			padRight(truncateName(alg.ID, 26), 26),
			padRight(string(alg.Family), 12),
			padRight(string(alg.Role), 17),
			padRight(fmt.Sprintf("%d", alg.SecurityBits), 4),
			padRight(fmt.Sprintf("%d", alg.PublicKeySize), 8),
			padRight(fmt.Sprintf("%d", alg.OutputSize), 8),
			alg.Status)
	}
	return nil
}
