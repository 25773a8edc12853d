package rest

import (
	"net/http"

	"marketbrief/di"
	"marketbrief/usecase/fetch_market_usecase"

	"github.com/labstack/echo/v4"
)

func registerMarketRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/market/quote/:symbol", handleGetQuote(container.FetchQuoteUsecase))
	v1.GET("/market/overview", handleGetOverview(container.MarketOverviewUsecase))
}

func handleGetQuote(usecase *fetch_market_usecase.FetchQuoteUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		symbol := c.Param("symbol")
		if symbol == "" {
			return handleValidationError(c, "symbol is required", "symbol", symbol)
		}

		quote, err := usecase.Execute(c.Request().Context(), symbol)
		if err != nil {
			return handleError(c, err, "GetQuote")
		}

		return c.JSON(http.StatusOK, QuoteResponse{
			Success: true,
			Data:    *quote,
		})
	}
}

func handleGetOverview(usecase *fetch_market_usecase.MarketOverviewUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		overview, err := usecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "GetOverview")
		}

		return c.JSON(http.StatusOK, OverviewResponse{
			Success: true,
			Data:    *overview,
		})
	}
}
