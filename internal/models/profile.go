package models

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DeploymentProfile describes a target environment and its hard requirements.
// A profile is created per advisory request and discarded after use.
type DeploymentProfile struct {
	Name         string `yaml:"name" json:"name"`
	RequiredRole Role   `yaml:"role" json:"role"`
	AllowStateful bool  `yaml:"allow_stateful,omitempty" json:"allow_stateful"`

	// Size ceilings in bytes. Zero means no ceiling.
	MaxPublicKeySize int `yaml:"max_public_key_size,omitempty" json:"max_public_key_size,omitempty"`
	MaxOutputSize    int `yaml:"max_output_size,omitempty" json:"max_output_size,omitempty"`

	// MinStatus is the minimum acceptable standardization status.
	// Empty defaults to experimental (accept everything).
	MinStatus Status `yaml:"min_status,omitempty" json:"min_status,omitempty"`
}

// LoadProfile loads a deployment profile from a YAML file.
func LoadProfile(path string) (*DeploymentProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var profile DeploymentProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Validate checks that the profile is usable for filtering.
func (p *DeploymentProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	switch p.RequiredRole {
	case RoleKEM, RoleSignature:
	default:
		return fmt.Errorf("profile %s: invalid role %q", p.Name, p.RequiredRole)
	}
	if p.MaxPublicKeySize < 0 {
		return fmt.Errorf("profile %s: max_public_key_size must not be negative, got %d", p.Name, p.MaxPublicKeySize)
	}
	if p.MaxOutputSize < 0 {
		return fmt.Errorf("profile %s: max_output_size must not be negative, got %d", p.Name, p.MaxOutputSize)
	}
	if p.MinStatus == "" {
		p.MinStatus = StatusExperimental
	}
	if _, ok := statusRank[p.MinStatus]; !ok {
		return fmt.Errorf("profile %s: invalid min_status %q", p.Name, p.MinStatus)
	}
	return nil
}
