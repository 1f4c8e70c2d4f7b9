package analysis

import (
	"context"
	"errors"
	"fmt"

	"fairmed/domain"
	"fairmed/pkg/logger"
)

// ErrNotImplemented is returned when a caller asks for file-based analysis,
// which is reserved for a future version with real model uploads.
var ErrNotImplemented = errors.New("file upload analysis not yet implemented")

type CatalogRepository interface {
	GetBaseline(ctx context.Context, scenario domain.Scenario) (domain.BiasReport, error)
	GetMitigated(ctx context.Context, scenario domain.Scenario) (domain.BiasReport, error)
	Scenarios() []domain.Scenario
}

type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

// Analyze resolves the baseline bias report for a scenario. Only the
// pre-loaded sample path exists in this version; useSample=false is refused
// with ErrNotImplemented rather than pretending to evaluate an upload.
func (s *Service) Analyze(ctx context.Context, scenario domain.Scenario, useSample bool) (domain.BiasReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.BiasReport{}, fmt.Errorf("context error: %w", err)
	}

	if !useSample {
		return domain.BiasReport{}, ErrNotImplemented
	}

	report, err := s.catalog.GetBaseline(ctx, scenario)
	if err != nil {
		return domain.BiasReport{}, err
	}

	logger.Info("Served baseline analysis", "scenario", scenario, "score", report.OverallScore)
	return report, nil
}

// ScenarioSummary is a catalog listing entry for scenario pickers.
type ScenarioSummary struct {
	Scenario     domain.Scenario `json:"scenario"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	OverallScore float64         `json:"overall_score"`
}

// ListScenarios summarizes every scenario's baseline report.
func (s *Service) ListScenarios(ctx context.Context) ([]ScenarioSummary, error) {
	summaries := make([]ScenarioSummary, 0, len(s.catalog.Scenarios()))
	for _, scenario := range s.catalog.Scenarios() {
		report, err := s.catalog.GetBaseline(ctx, scenario)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ScenarioSummary{
			Scenario:     scenario,
			Title:        report.Title,
			Description:  report.Description,
			OverallScore: report.OverallScore,
		})
	}
	return summaries, nil
}
