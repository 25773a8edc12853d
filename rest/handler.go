package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerHealthRoutes(v1 *echo.Group) {
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})
}
