package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqc-tools/pqadvise/internal/models"
)

func makeAdvisory() *models.Advisory {
	return &models.Advisory{
		RequestID: "req-123",
		Profile: models.DeploymentProfile{
			Name:         "tls-legacy-hardware",
			RequiredRole: models.RoleKEM,
			MinStatus:    models.StatusCandidate,
		},
		Ranked: []models.ScoreResult{
			{
				AlgorithmID:   "ml-kem-512",
				Rank:          1,
				WeightedTotal: 0.842,
				Status:        models.StatusStandardized,
				OutputSize:    768,
				CriterionScores: []models.CriterionScore{
					{Criterion: "security", Weight: 0.3, Normalized: 0.5, Contribution: 0.15},
				},
			},
		},
		Rejected: []models.Rejection{
			{AlgorithmID: "classic-mceliece-348864", Reason: models.RejectKeySizeExceeded, Detail: "public key is 261120 bytes, ceiling is 2000"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(makeAdvisory())

	assert.Contains(t, md, "# Advisory: tls-legacy-hardware")
	assert.Contains(t, md, "| 1 | ml-kem-512 | 0.842 | standardized |")
	assert.Contains(t, md, "## Rejected")
	assert.Contains(t, md, "KeySizeExceeded")
	assert.Contains(t, md, "ranked #1")
	assert.NotContains(t, md, "No algorithm satisfies")
}

func TestMarkdown_NoCandidate(t *testing.T) {
	adv := makeAdvisory()
	adv.Ranked = nil
	adv.NoCandidate = true

	md := Markdown(adv)
	assert.Contains(t, md, "No algorithm satisfies the profile")
	assert.NotContains(t, md, "## Ranked recommendations")
}

func TestHTML(t *testing.T) {
	html, err := HTML(makeAdvisory())
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "ml-kem-512")
}
