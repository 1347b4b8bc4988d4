// Package wizard collects deployment profile fields through an interactive
// form and renders them as a profile YAML document.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/pqc-tools/pqadvise/internal/models"
)

const profileYAMLTemplate = `name: {{ .Name }}
role: {{ .RequiredRole }}
allow_stateful: {{ .AllowStateful }}
{{- if gt .MaxPublicKeySize 0 }}
max_public_key_size: {{ .MaxPublicKeySize }}
{{- end }}
{{- if gt .MaxOutputSize 0 }}
max_output_size: {{ .MaxOutputSize }}
{{- end }}
min_status: {{ .MinStatus }}
`

// RunProfileWizard runs an interactive huh form to collect profile fields.
// If initialName is non-empty, it pre-populates the name field.
func RunProfileWizard(in io.Reader, out io.Writer, initialName string) (*models.DeploymentProfile, error) {
	var (
		name          = initialName
		role          string
		allowStateful bool
		maxKeyRaw     string
		maxOutRaw     string
		minStatus     string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Description("A short name for this deployment target").
				Placeholder("tls-legacy-hardware").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("profile name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Required role").
				Options(
					huh.NewOption("key-encapsulation", string(models.RoleKEM)),
					huh.NewOption("signature", string(models.RoleSignature)),
				).
				Value(&role),
			huh.NewConfirm().
				Title("Allow stateful schemes?").
				Description("Stateful hash-based schemes need careful state management").
				Value(&allowStateful),
			huh.NewInput().
				Title("Max public key size (bytes)").
				Description("Empty for no ceiling").
				Placeholder("2000").
				Value(&maxKeyRaw).
				Validate(validateOptionalSize),
			huh.NewInput().
				Title("Max ciphertext/signature size (bytes)").
				Description("Empty for no ceiling").
				Placeholder("4000").
				Value(&maxOutRaw).
				Validate(validateOptionalSize),
			huh.NewSelect[string]().
				Title("Minimum standardization status").
				Options(
					huh.NewOption("experimental", string(models.StatusExperimental)),
					huh.NewOption("candidate", string(models.StatusCandidate)),
					huh.NewOption("standardized", string(models.StatusStandardized)),
				).
				Value(&minStatus),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	profile := &models.DeploymentProfile{
		Name:          strings.TrimSpace(name),
		RequiredRole:  models.Role(role),
		AllowStateful: allowStateful,
		MaxPublicKeySize: parseOptionalSize(maxKeyRaw),
		MaxOutputSize:    parseOptionalSize(maxOutRaw),
		MinStatus:        models.Status(minStatus),
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// GenerateProfileYAML renders a profile YAML document from the given profile.
func GenerateProfileYAML(profile *models.DeploymentProfile) (string, error) {
	tmpl, err := template.New("profile").Parse(profileYAMLTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, profile); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func validateOptionalSize(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

func parseOptionalSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
