package rest

import (
	"net/http"

	"marketbrief/di"
	"marketbrief/usecase/dashboard_usecase"

	"github.com/labstack/echo/v4"
)

func registerDashboardRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/dashboard/stats", handleGetStats(container.DashboardStatsUsecase))
}

func handleGetStats(usecase *dashboard_usecase.DashboardStatsUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := usecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "GetStats")
		}

		return c.JSON(http.StatusOK, StatsResponse{
			Success: true,
			Data:    newStatsView(*stats),
		})
	}
}
