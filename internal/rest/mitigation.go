package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"fairmed/domain"
	"fairmed/internal/repository/catalog"
	"fairmed/pkg/logger"
	"fairmed/pkg/metrics"
)

type MitigationService interface {
	Mitigate(ctx context.Context, scenario domain.Scenario, strategy string) (domain.BiasReport, error)
}

type MitigationHandler struct {
	validate          *validator.Validate
	mitigationService MitigationService
	timeout           time.Duration
}

func NewMitigationHandler(mitigationService MitigationService) *MitigationHandler {
	return &MitigationHandler{
		validate:          validator.New(),
		mitigationService: mitigationService,
		timeout:           10 * time.Second,
	}
}

type MitigateRequest struct {
	Scenario string `json:"scenario" validate:"omitempty,oneof=dermatology cardiovascular pain"`
	// Strategy is accepted for traceability; only one mitigated variant
	// exists per scenario, so it does not select between results.
	Mitigation string `json:"mitigation"`
}

// POST /api/v1/mitigate
func (h *MitigationHandler) Mitigate(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.ReportLatency.Observe(time.Since(start).Seconds())
	}()

	var req MitigateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind mitigate request", "error", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	if err := h.validate.Struct(&req); err != nil {
		metrics.InvalidScenario.Inc()
		logger.Error("Failed to validate mitigate request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid scenario: " + req.Scenario})
	}

	scenario := domain.ScenarioOrDefault(req.Scenario)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	report, err := h.mitigationService.Mitigate(ctx, scenario, req.Mitigation)
	if err != nil {
		if errors.Is(err, catalog.ErrScenarioNotFound) {
			metrics.InvalidScenario.Inc()
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to mitigate scenario", "scenario", scenario, "error", err)
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(err.Error()))
	}

	metrics.MitigateRequests.Inc()

	return c.JSON(http.StatusOK, report)
}
