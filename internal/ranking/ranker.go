// Package ranking orders scored algorithms into a total order and explains
// why each one ranked where it did.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pqc-tools/pqadvise/internal/models"
)

// Rank orders results descending by weighted total and assigns 1-based ranks.
// Ties break on (1) higher standardization status, (2) smaller
// ciphertext/signature size, (3) lexicographically smaller id. The final
// tie-break guarantees a total order, so identical inputs always produce the
// same ordering. An empty input yields an empty, non-nil-safe result; the
// caller distinguishes "no candidates" via the upstream feasible set.
func Rank(results []models.ScoreResult) []models.ScoreResult {
	ranked := make([]models.ScoreResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		if a.Status.Ordinal() != b.Status.Ordinal() {
			return a.Status.Ordinal() > b.Status.Ordinal()
		}
		if a.OutputSize != b.OutputSize {
			return a.OutputSize < b.OutputSize
		}
		return a.AlgorithmID < b.AlgorithmID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Explanation is the structured breakdown of one ranked result.
type Explanation struct {
	AlgorithmID   string                  `json:"algorithm_id"`
	Rank          int                     `json:"rank"`
	WeightedTotal float64                 `json:"weighted_total"`
	Contributions []models.CriterionScore `json:"contributions"`
	Summary       string                  `json:"summary"`
}

// Explain builds a traceable breakdown listing each criterion's contribution.
func Explain(r models.ScoreResult) Explanation {
	var top models.CriterionScore
	for _, cs := range r.CriterionScores {
		if cs.Contribution > top.Contribution {
			top = cs
		}
	}

	parts := make([]string, 0, len(r.CriterionScores))
	for _, cs := range r.CriterionScores {
		parts = append(parts, fmt.Sprintf("%s %.3f×%.2f=%.3f", cs.Criterion, cs.Normalized, cs.Weight, cs.Contribution))
	}

	summary := fmt.Sprintf("ranked #%d with weighted total %.3f", r.Rank, r.WeightedTotal)
	if top.Criterion != "" {
		summary += fmt.Sprintf("; largest contribution from %s (%.3f)", top.Criterion, top.Contribution)
	}
	summary += " [" + strings.Join(parts, ", ") + "]"

	return Explanation{
		AlgorithmID:   r.AlgorithmID,
		Rank:          r.Rank,
		WeightedTotal: r.WeightedTotal,
		Contributions: r.CriterionScores,
		Summary:       summary,
	}
}
