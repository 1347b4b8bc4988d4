// Package scoring computes weighted multi-criteria scores for feasible
// algorithms. Scoring is pure: no clock, no randomness, no I/O, so identical
// inputs always produce identical results.
package scoring

import (
	"github.com/pqc-tools/pqadvise/internal/criteria"
	"github.com/pqc-tools/pqadvise/internal/models"
)

// Engine scores algorithms against a bound criteria model.
type Engine struct {
	model *criteria.Model
}

// NewEngine creates a scoring engine over a criteria model. The model must
// already be bound to the catalog the algorithms come from.
func NewEngine(model *criteria.Model) *Engine {
	return &Engine{model: model}
}

// Score computes the per-criterion breakdown and weighted total for one
// algorithm. Callers pass only feasible algorithms; the engine does not
// re-check constraints. The breakdown preserves criterion definition order.
func (e *Engine) Score(alg models.Algorithm) (*models.ScoreResult, error) {
	crits := e.model.All()

	result := &models.ScoreResult{
		AlgorithmID:     alg.ID,
		Status:          alg.Status,
		OutputSize:      alg.OutputSize,
		CriterionScores: make([]models.CriterionScore, 0, len(crits)),
	}

	for _, c := range crits {
		normalized, err := e.model.Normalize(c.Name, alg)
		if err != nil {
			return nil, err
		}
		contribution := normalized * c.Weight
		result.CriterionScores = append(result.CriterionScores, models.CriterionScore{
			Criterion:    c.Name,
			Weight:       c.Weight,
			Normalized:   normalized,
			Contribution: contribution,
		})
		result.WeightedTotal += contribution
	}

	return result, nil
}

// ScoreAll scores a feasible set in order.
func (e *Engine) ScoreAll(algs []models.Algorithm) ([]models.ScoreResult, error) {
	results := make([]models.ScoreResult, 0, len(algs))
	for _, alg := range algs {
		r, err := e.Score(alg)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}
