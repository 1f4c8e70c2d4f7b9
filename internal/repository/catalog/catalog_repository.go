// Package catalog is the in-memory registry of demo bias reports.
//
// Every number here is an illustrative fixture chosen to demonstrate three
// canonical bias patterns; nothing is computed from live predictions. The
// constructor cross-checks each fixture against the fairness package so the
// hand-authored values cannot silently drift from what their confusion
// matrices imply.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"fairmed/business/fairness"
	"fairmed/domain"
)

var ErrScenarioNotFound = errors.New("scenario not found")

type Repository struct {
	baseline  map[domain.Scenario]domain.BiasReport
	mitigated map[domain.Scenario]domain.BiasReport
}

// NewRepository builds the fully populated registry. It fails when any
// fixture is internally inconsistent, so a booted process always serves a
// verified catalog.
func NewRepository() (*Repository, error) {
	repo := &Repository{
		baseline: map[domain.Scenario]domain.BiasReport{
			domain.ScenarioDermatology:    dermatologyBaseline(),
			domain.ScenarioCardiovascular: cardiovascularBaseline(),
			domain.ScenarioPain:           painBaseline(),
		},
		mitigated: map[domain.Scenario]domain.BiasReport{
			domain.ScenarioDermatology:    dermatologyMitigated(),
			domain.ScenarioCardiovascular: cardiovascularMitigated(),
			domain.ScenarioPain:           painMitigated(),
		},
	}

	for _, scenario := range domain.Scenarios() {
		base, ok := repo.baseline[scenario]
		if !ok {
			return nil, fmt.Errorf("missing baseline report for %s", scenario)
		}
		mitigated, ok := repo.mitigated[scenario]
		if !ok {
			return nil, fmt.Errorf("missing mitigated report for %s", scenario)
		}

		if err := fairness.Check(base); err != nil {
			return nil, fmt.Errorf("baseline fixture: %w", err)
		}
		if err := fairness.Check(mitigated); err != nil {
			return nil, fmt.Errorf("mitigated fixture: %w", err)
		}
		if mitigated.OverallScore <= base.OverallScore {
			return nil, fmt.Errorf("%s: mitigated score %.1f does not improve on baseline %.1f",
				scenario, mitigated.OverallScore, base.OverallScore)
		}
	}

	return repo, nil
}

func (r *Repository) GetBaseline(ctx context.Context, scenario domain.Scenario) (domain.BiasReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.BiasReport{}, err
	}

	report, ok := r.baseline[scenario]
	if !ok {
		return domain.BiasReport{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, scenario)
	}
	return report, nil
}

func (r *Repository) GetMitigated(ctx context.Context, scenario domain.Scenario) (domain.BiasReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.BiasReport{}, err
	}

	report, ok := r.mitigated[scenario]
	if !ok {
		return domain.BiasReport{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, scenario)
	}
	return report, nil
}

// Scenarios returns the valid scenario identifiers in presentation order.
func (r *Repository) Scenarios() []domain.Scenario {
	return domain.Scenarios()
}
