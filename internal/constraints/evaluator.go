// Package constraints checks hard compatibility constraints against a
// deployment profile. Rejection is a reportable outcome, never an error.
package constraints

import (
	"fmt"

	"github.com/pqc-tools/pqadvise/internal/catalog"
	"github.com/pqc-tools/pqadvise/internal/models"
)

// Filter splits the catalog into feasible algorithms and rejections for the
// given profile. Rules run in a fixed order and short-circuit on the first
// failure per algorithm, so each rejection carries exactly one reason.
// An empty feasible set is a valid outcome; the ranker reports it as
// "no candidate meets constraints".
func Filter(c *catalog.Catalog, profile *models.DeploymentProfile) (feasible []models.Algorithm, rejected []models.Rejection) {
	for _, alg := range c.All() {
		if rej, ok := check(alg, profile); ok {
			rejected = append(rejected, rej)
			continue
		}
		feasible = append(feasible, alg)
	}
	return feasible, rejected
}

func check(alg models.Algorithm, p *models.DeploymentProfile) (models.Rejection, bool) {
	if alg.Role != p.RequiredRole {
		return reject(alg, models.RejectRoleMismatch,
			fmt.Sprintf("role %s does not satisfy required role %s", alg.Role, p.RequiredRole)), true
	}
	if alg.Stateful && !p.AllowStateful {
		return reject(alg, models.RejectStatefulnessDisallowed,
			"scheme is stateful but the profile disallows stateful schemes"), true
	}
	if p.MaxPublicKeySize > 0 && alg.PublicKeySize > p.MaxPublicKeySize {
		return reject(alg, models.RejectKeySizeExceeded,
			fmt.Sprintf("public key is %d bytes, ceiling is %d", alg.PublicKeySize, p.MaxPublicKeySize)), true
	}
	if p.MaxOutputSize > 0 && alg.OutputSize > p.MaxOutputSize {
		return reject(alg, models.RejectOutputSizeExceeded,
			fmt.Sprintf("ciphertext/signature is %d bytes, ceiling is %d", alg.OutputSize, p.MaxOutputSize)), true
	}
	if !alg.Status.AtLeast(p.MinStatus) {
		return reject(alg, models.RejectStandardizationTooLow,
			fmt.Sprintf("status %s is below required %s", alg.Status, p.MinStatus)), true
	}
	return models.Rejection{}, false
}

func reject(alg models.Algorithm, reason models.RejectReason, detail string) models.Rejection {
	return models.Rejection{AlgorithmID: alg.ID, Reason: reason, Detail: detail}
}
