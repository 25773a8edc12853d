package rest

import (
	"net/http"
	"strconv"
	"time"

	"marketbrief/config"
	"marketbrief/di"
	"marketbrief/domain"
	"marketbrief/usecase/delete_summary_usecase"
	"marketbrief/usecase/fetch_summary_usecase"
	"marketbrief/usecase/register_summary_usecase"
	"marketbrief/utils/metrics"

	"github.com/labstack/echo/v4"
)

func registerSummaryRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/summaries", handleListSummaries(container.FetchSummariesUsecase, container.MetricsCollector, cfg))
	v1.GET("/summaries/:id", handleGetSummary(container.FetchSummaryDetailUsecase))
	v1.POST("/summaries", handleRegisterSummary(container.RegisterSummaryUsecase))
	v1.DELETE("/summaries/:id", handleDeleteSummary(container.DeleteSummaryUsecase))
}

func handleListSummaries(usecase *fetch_summary_usecase.FetchSummariesUsecase, collector *metrics.Collector, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := domain.SummaryFilter{
			Sentiment:   c.QueryParam("sentiment"),
			TimeHorizon: c.QueryParam("timeHorizon"),
			Search:      c.QueryParam("search"),
		}

		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page <= 0 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
		if pageSize <= 0 {
			pageSize = cfg.Dashboard.DefaultPageSize
		}
		if pageSize > cfg.Dashboard.MaxPageSize {
			pageSize = cfg.Dashboard.MaxPageSize
		}

		result, err := usecase.Execute(c.Request().Context(), filter, page, pageSize)
		if err != nil {
			return handleError(c, err, "ListSummaries")
		}

		collector.RecordSummariesServed(len(result.Summaries))

		return c.JSON(http.StatusOK, SummariesResponse{
			Success: true,
			Data: SummariesData{
				Summaries: newSummaryViews(result.Summaries, time.Now()),
				Stats:     newStatsView(result.Stats),
				Pagination: PaginationView{
					Page:       result.Page.Page,
					PageSize:   result.Page.PageSize,
					TotalItems: result.Page.TotalItems,
					TotalPages: result.Page.TotalPages,
				},
			},
		})
	}
}

func handleGetSummary(usecase *fetch_summary_usecase.FetchSummaryDetailUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return handleValidationError(c, "id must be a positive integer", "id", c.Param("id"))
		}

		summary, err := usecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "GetSummary")
		}

		return c.JSON(http.StatusOK, SummaryDetailResponse{
			Success: true,
			Data:    newSummaryView(*summary, time.Now()),
		})
	}
}

func handleRegisterSummary(usecase *register_summary_usecase.RegisterSummaryUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var draft domain.SummaryDraft
		if err := c.Bind(&draft); err != nil {
			return handleValidationError(c, "invalid request body", "body", err.Error())
		}

		id, err := usecase.Execute(c.Request().Context(), draft)
		if err != nil {
			return handleError(c, err, "RegisterSummary")
		}

		return c.JSON(http.StatusCreated, RegisterSummaryResponse{
			Success: true,
			ID:      id,
		})
	}
}

func handleDeleteSummary(usecase *delete_summary_usecase.DeleteSummaryUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			return handleValidationError(c, "id must be a positive integer", "id", c.Param("id"))
		}

		if err := usecase.Execute(c.Request().Context(), id); err != nil {
			return handleError(c, err, "DeleteSummary")
		}

		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}
}
