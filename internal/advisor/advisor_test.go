package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqc-tools/pqadvise/internal/catalog"
	"github.com/pqc-tools/pqadvise/internal/criteria"
	"github.com/pqc-tools/pqadvise/internal/models"
)

func defaultAdvisor(t *testing.T) *Advisor {
	t.Helper()
	a, err := New(catalog.Default(), criteria.Default())
	require.NoError(t, err)
	return a
}

func TestNew_RejectsBadWeights(t *testing.T) {
	m := criteria.NewModel()
	require.NoError(t, m.Define(criteria.Criterion{Name: "security", Attribute: criteria.AttrSecurityBits, Weight: 0.4}))

	_, err := New(catalog.Default(), m)
	require.ErrorIs(t, err, criteria.ErrWeightSum)
}

func TestAdvise_RanksFeasibleAndReportsRejections(t *testing.T) {
	a := defaultAdvisor(t)

	adv, err := a.Advise(&models.DeploymentProfile{
		Name:             "tls-legacy-hardware",
		RequiredRole:     models.RoleKEM,
		MaxPublicKeySize: 2000,
		MinStatus:        models.StatusCandidate,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, adv.RequestID)
	assert.False(t, adv.NoCandidate)
	require.NotEmpty(t, adv.Ranked)

	// Ranks are 1-based and strictly ordered.
	for i, r := range adv.Ranked {
		assert.Equal(t, i+1, r.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, adv.Ranked[i-1].WeightedTotal, r.WeightedTotal)
		}
	}

	// McEliece exceeds the key ceiling and must appear as a rejection.
	var found bool
	for _, rej := range adv.Rejected {
		if rej.AlgorithmID == "classic-mceliece-348864" {
			found = true
			assert.Equal(t, models.RejectKeySizeExceeded, rej.Reason)
		}
	}
	assert.True(t, found, "expected classic-mceliece-348864 in rejections")
}

func TestAdvise_NoCandidate(t *testing.T) {
	a := defaultAdvisor(t)

	adv, err := a.Advise(&models.DeploymentProfile{
		Name:             "impossible",
		RequiredRole:     models.RoleKEM,
		MaxPublicKeySize: 1,
		MinStatus:        models.StatusExperimental,
	})
	require.NoError(t, err)

	assert.True(t, adv.NoCandidate)
	assert.Empty(t, adv.Ranked)
	assert.NotEmpty(t, adv.Rejected)
}

func TestAdvise_InvalidProfile(t *testing.T) {
	a := defaultAdvisor(t)
	_, err := a.Advise(&models.DeploymentProfile{Name: "bad", RequiredRole: "cipher"})
	require.Error(t, err)
}

func TestAdvise_DeterministicApartFromRequestID(t *testing.T) {
	a := defaultAdvisor(t)
	profile := &models.DeploymentProfile{
		Name:         "signing",
		RequiredRole: models.RoleSignature,
		MinStatus:    models.StatusExperimental,
	}

	first, err := a.Advise(profile)
	require.NoError(t, err)
	second, err := a.Advise(profile)
	require.NoError(t, err)

	first.RequestID = ""
	second.RequestID = ""

	fj, err := json.Marshal(first)
	require.NoError(t, err)
	sj, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, fj, sj)
}

func TestAdviseAll_PreservesInputOrder(t *testing.T) {
	a := defaultAdvisor(t)

	var profiles []*models.DeploymentProfile
	for i := range 16 {
		role := models.RoleKEM
		if i%2 == 1 {
			role = models.RoleSignature
		}
		profiles = append(profiles, &models.DeploymentProfile{
			Name:         fmt.Sprintf("profile-%02d", i),
			RequiredRole: role,
			MinStatus:    models.StatusExperimental,
		})
	}

	advisories, err := a.AdviseAll(context.Background(), profiles)
	require.NoError(t, err)
	require.Len(t, advisories, len(profiles))

	for i, adv := range advisories {
		assert.Equal(t, profiles[i].Name, adv.Profile.Name)
	}
}

func TestAdviseAll_PropagatesErrors(t *testing.T) {
	a := defaultAdvisor(t)

	profiles := []*models.DeploymentProfile{
		{Name: "ok", RequiredRole: models.RoleKEM, MinStatus: models.StatusExperimental},
		{Name: "bad", RequiredRole: "cipher"},
	}

	_, err := a.AdviseAll(context.Background(), profiles)
	require.Error(t, err)
}
