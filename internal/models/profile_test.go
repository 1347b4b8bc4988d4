package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: tls-legacy-hardware
role: key-encapsulation
max_public_key_size: 2000
min_status: candidate
`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "tls-legacy-hardware", p.Name)
	assert.Equal(t, RoleKEM, p.RequiredRole)
	assert.Equal(t, 2000, p.MaxPublicKeySize)
	assert.Equal(t, StatusCandidate, p.MinStatus)
	assert.Zero(t, p.MaxOutputSize)
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestProfileValidate_DefaultsMinStatus(t *testing.T) {
	p := &DeploymentProfile{Name: "x", RequiredRole: RoleSignature}
	require.NoError(t, p.Validate())
	assert.Equal(t, StatusExperimental, p.MinStatus)
}

func TestProfileValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile DeploymentProfile
	}{
		{"empty name", DeploymentProfile{RequiredRole: RoleKEM}},
		{"bad role", DeploymentProfile{Name: "x", RequiredRole: "cipher"}},
		{"negative key ceiling", DeploymentProfile{Name: "x", RequiredRole: RoleKEM, MaxPublicKeySize: -1}},
		{"negative output ceiling", DeploymentProfile{Name: "x", RequiredRole: RoleKEM, MaxOutputSize: -1}},
		{"bad status", DeploymentProfile{Name: "x", RequiredRole: RoleKEM, MinStatus: "approved"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.profile
			require.Error(t, p.Validate())
		})
	}
}
