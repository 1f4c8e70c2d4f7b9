package mitigation

import (
	"context"
	"fmt"

	"fairmed/domain"
	"fairmed/pkg/logger"
)

type CatalogRepository interface {
	GetMitigated(ctx context.Context, scenario domain.Scenario) (domain.BiasReport, error)
}

type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

// Mitigate resolves the post-intervention report for a scenario. The strategy
// label is recorded for traceability but does not change the result: exactly
// one mitigated variant exists per scenario in this version.
func (s *Service) Mitigate(ctx context.Context, scenario domain.Scenario, strategy string) (domain.BiasReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.BiasReport{}, fmt.Errorf("context error: %w", err)
	}

	report, err := s.catalog.GetMitigated(ctx, scenario)
	if err != nil {
		return domain.BiasReport{}, err
	}

	logger.Info("Served mitigated report", "scenario", scenario, "strategy", strategy, "score", report.OverallScore)
	return report, nil
}
