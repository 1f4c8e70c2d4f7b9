package router

import (
	"fairmed/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupHealthRoutes(api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Check)
}

func SetupAnalysisRoutes(api *echo.Group, handler *rest.AnalysisHandler) {
	api.POST("/analyze", handler.Analyze)
	api.GET("/scenarios", handler.ListScenarios)
}

func SetupMitigationRoutes(api *echo.Group, handler *rest.MitigationHandler) {
	api.POST("/mitigate", handler.Mitigate)
}
