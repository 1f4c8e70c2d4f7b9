package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"fairmed/business/analysis"
	"fairmed/domain"
	"fairmed/internal/repository/catalog"
	"fairmed/pkg/logger"
	"fairmed/pkg/metrics"
)

type AnalysisService interface {
	Analyze(ctx context.Context, scenario domain.Scenario, useSample bool) (domain.BiasReport, error)
	ListScenarios(ctx context.Context) ([]analysis.ScenarioSummary, error)
}

type AnalysisHandler struct {
	validate        *validator.Validate
	analysisService AnalysisService
	timeout         time.Duration
}

func NewAnalysisHandler(analysisService AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		validate:        validator.New(),
		analysisService: analysisService,
		timeout:         10 * time.Second,
	}
}

type AnalyzeRequest struct {
	Scenario  string `json:"scenario" validate:"omitempty,oneof=dermatology cardiovascular pain"`
	UseSample *bool  `json:"use_sample"`
}

// POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.ReportLatency.Observe(time.Since(start).Seconds())
	}()

	// Parse faults surface as a generic server error; the caller just
	// re-issues the request, nothing here has side effects.
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind analyze request", "error", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	// Missing use_sample means the pre-loaded demo data path. Non-sample
	// analysis is refused whatever the scenario says, so the scenario is
	// only validated on the sample path.
	useSample := true
	if req.UseSample != nil {
		useSample = *req.UseSample
	}

	if useSample {
		if err := h.validate.Struct(&req); err != nil {
			metrics.InvalidScenario.Inc()
			logger.Error("Failed to validate analyze request", "error", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid scenario: " + req.Scenario})
		}
	}

	scenario := domain.ScenarioOrDefault(req.Scenario)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.analysisService.Analyze(ctx, scenario, useSample)
	if err != nil {
		if errors.Is(err, analysis.ErrNotImplemented) {
			return c.JSON(http.StatusNotImplemented, ResponseError{Message: err.Error()})
		}
		if errors.Is(err, catalog.ErrScenarioNotFound) {
			metrics.InvalidScenario.Inc()
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to analyze scenario", "scenario", scenario, "error", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	metrics.AnalyzeRequests.Inc()

	// The report itself is the response body: clients read overall_score,
	// groups, and metrics at the top level.
	return c.JSON(http.StatusOK, report)
}

// GET /api/v1/scenarios
func (h *AnalysisHandler) ListScenarios(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summaries, err := h.analysisService.ListScenarios(ctx)
	if err != nil {
		logger.Error("Failed to list scenarios", "error", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summaries))
}
