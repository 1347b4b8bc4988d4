// Package advisor wires the catalog, constraint evaluator, scoring engine,
// and ranker into a single advisory request pipeline.
package advisor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pqc-tools/pqadvise/internal/catalog"
	"github.com/pqc-tools/pqadvise/internal/constraints"
	"github.com/pqc-tools/pqadvise/internal/criteria"
	"github.com/pqc-tools/pqadvise/internal/models"
	"github.com/pqc-tools/pqadvise/internal/ranking"
	"github.com/pqc-tools/pqadvise/internal/scoring"
)

// Advisor runs advisory requests against one immutable catalog snapshot and
// one bound criteria model. It is safe for concurrent use: every field is
// read-only after construction.
type Advisor struct {
	catalog *catalog.Catalog
	model   *criteria.Model
	engine  *scoring.Engine
}

// New creates an advisor. The criteria model is validated and bound to the
// catalog here so every later request uses identical normalization bounds.
func New(c *catalog.Catalog, model *criteria.Model) (*Advisor, error) {
	if err := model.ValidateWeights(); err != nil {
		return nil, err
	}
	model.Bind(c)
	return &Advisor{
		catalog: c,
		model:   model,
		engine:  scoring.NewEngine(model),
	}, nil
}

// Advise filters, scores, and ranks the catalog for one deployment profile.
func (a *Advisor) Advise(profile *models.DeploymentProfile) (*models.Advisory, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	feasible, rejected := constraints.Filter(a.catalog, profile)
	slog.Debug("constraints evaluated",
		"profile", profile.Name,
		"feasible", len(feasible),
		"rejected", len(rejected))

	results, err := a.engine.ScoreAll(feasible)
	if err != nil {
		return nil, err
	}

	return &models.Advisory{
		RequestID:   uuid.NewString(),
		Profile:     *profile,
		Ranked:      ranking.Rank(results),
		Rejected:    rejected,
		NoCandidate: len(feasible) == 0,
	}, nil
}

// AdviseAll runs one advisory per profile concurrently against the same
// catalog snapshot. The catalog and model are read-only, so no locking is
// needed. Output order matches the input order regardless of completion
// order.
func (a *Advisor) AdviseAll(ctx context.Context, profiles []*models.DeploymentProfile) ([]*models.Advisory, error) {
	advisories := make([]*models.Advisory, len(profiles))

	g, _ := errgroup.WithContext(ctx)
	for i, p := range profiles {
		g.Go(func() error {
			adv, err := a.Advise(p)
			if err != nil {
				return err
			}
			advisories[i] = adv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return advisories, nil
}
