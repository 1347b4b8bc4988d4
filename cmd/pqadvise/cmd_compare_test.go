package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqc-tools/pqadvise/internal/models"
)

func TestCompareCommand_Table(t *testing.T) {
	strict := writeProfile(t, `
name: constrained
role: key-encapsulation
max_public_key_size: 2000
min_status: standardized
`)
	loose := writeProfile(t, `
name: permissive
role: key-encapsulation
`)

	var buf bytes.Buffer
	cmd := newCompareCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{strict, loose})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "PROFILE COMPARISON")
	assert.Contains(t, out, "[1] constrained")
	assert.Contains(t, out, "[2] permissive")
	// McEliece is feasible under the permissive profile but rejected under the ceiling.
	assert.Contains(t, out, "classic-mceliece-3488")
	assert.Contains(t, out, "KeySizeExceeded")
}

func TestCompareCommand_JSON(t *testing.T) {
	a := writeProfile(t, `
name: a
role: signature
min_status: standardized
`)
	b := writeProfile(t, `
name: b
role: signature
`)

	var buf bytes.Buffer
	cmd := newCompareCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{a, b, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var report comparisonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, []string{"a", "b"}, report.Profiles)
	require.NotEmpty(t, report.Algorithms)
	for _, ac := range report.Algorithms {
		assert.Len(t, ac.Ranks, 2)
		assert.Len(t, ac.Totals, 2)
		assert.Len(t, ac.Rejections, 2)
	}
}

func TestBuildComparisonReport(t *testing.T) {
	advisories := []*models.Advisory{
		{
			Profile: models.DeploymentProfile{Name: "p1"},
			Ranked: []models.ScoreResult{
				{AlgorithmID: "alpha", Rank: 1, WeightedTotal: 0.9},
				{AlgorithmID: "beta", Rank: 2, WeightedTotal: 0.7},
			},
		},
		{
			Profile: models.DeploymentProfile{Name: "p2"},
			Ranked: []models.ScoreResult{
				{AlgorithmID: "beta", Rank: 1, WeightedTotal: 0.8},
			},
			Rejected: []models.Rejection{
				{AlgorithmID: "alpha", Reason: models.RejectStandardizationTooLow},
			},
		},
	}

	report := buildComparisonReport(advisories)

	require.Len(t, report.Algorithms, 2)
	alpha := report.Algorithms[0]
	assert.Equal(t, "alpha", alpha.AlgorithmID)
	assert.Equal(t, []int{1, 0}, alpha.Ranks)
	assert.Equal(t, []string{"", "StandardizationTooLow"}, alpha.Rejections)

	beta := report.Algorithms[1]
	assert.Equal(t, []int{2, 1}, beta.Ranks)
}

func TestCompareCommand_RequiresTwoProfiles(t *testing.T) {
	p := writeProfile(t, `
name: only
role: key-encapsulation
`)

	cmd := newCompareCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{p})

	require.Error(t, cmd.Execute())
}
