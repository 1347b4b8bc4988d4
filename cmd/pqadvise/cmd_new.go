package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pqc-tools/pqadvise/internal/models"
	"github.com/pqc-tools/pqadvise/internal/wizard"
)

func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <profile-name>",
		Short: "Create a new deployment profile file",
		Long: `Create a deployment profile YAML file describing a target environment.

When running in a terminal (TTY), launches an interactive wizard to collect
the profile's constraints. In non-interactive environments (CI, pipes), a
permissive default profile is written.`,
		Args: cobra.ExactArgs(1),
		RunE: newCommandE,
	}

	return cmd
}

func newCommandE(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	if err := validateProfileName(profileName); err != nil {
		return err
	}

	var profile *models.DeploymentProfile

	// Check TTY from the command's input stream, not os.Stdin directly.
	inReader := cmd.InOrStdin()
	isTTY := false
	if f, ok := inReader.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	if isTTY {
		p, err := wizard.RunProfileWizard(cmd.InOrStdin(), cmd.OutOrStdout(), profileName)
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
		if p.Name != "" && p.Name != profileName {
			return fmt.Errorf("wizard name %q does not match CLI argument %q", p.Name, profileName)
		}
		p.Name = profileName
		profile = p
	} else {
		profile = &models.DeploymentProfile{
			Name:         profileName,
			RequiredRole: models.RoleKEM,
			MinStatus:    models.StatusExperimental,
		}
	}

	content, err := wizard.GenerateProfileYAML(profile)
	if err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}

	outPath := profileName + ".yaml"
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists", outPath)
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", outPath) //nolint:errcheck
	return nil
}

// validateProfileName rejects names with path-traversal characters or empty names.
func validateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.Contains(cleaned, "/") || strings.Contains(cleaned, "\\") {
		return fmt.Errorf("profile name %q contains invalid path characters", name)
	}
	return nil
}
