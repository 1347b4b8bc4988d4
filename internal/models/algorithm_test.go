package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOrdering(t *testing.T) {
	assert.True(t, StatusStandardized.AtLeast(StatusCandidate))
	assert.True(t, StatusCandidate.AtLeast(StatusCandidate))
	assert.False(t, StatusExperimental.AtLeast(StatusCandidate))

	assert.Equal(t, 0, StatusExperimental.Ordinal())
	assert.Equal(t, 1, StatusCandidate.Ordinal())
	assert.Equal(t, 2, StatusStandardized.Ordinal())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Standardized ")
	require.NoError(t, err)
	assert.Equal(t, StatusStandardized, s)

	_, err = ParseStatus("approved")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("KEM")
	require.NoError(t, err)
	assert.Equal(t, RoleKEM, r)

	r, err = ParseRole("signature")
	require.NoError(t, err)
	assert.Equal(t, RoleSignature, r)

	_, err = ParseRole("cipher")
	require.Error(t, err)
}

func TestAlgorithmValidate(t *testing.T) {
	valid := Algorithm{
		ID:            "ml-kem-768",
		Family:        FamilyLattice,
		Role:          RoleKEM,
		SecurityBits:  192,
		PublicKeySize: 1184,
		OutputSize:    1088,
		Performance:   0.95,
		Status:        StatusStandardized,
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.Performance = -0.1
	require.Error(t, invalid.Validate())
}
