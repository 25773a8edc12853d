package fetch_summary_usecase

import (
	"context"

	"marketbrief/domain"
	"marketbrief/port/summary_port"
	"marketbrief/utils/logger"
)

// SummariesResult is one assembled dashboard listing: the requested page of
// filtered summaries plus statistics over the full unfiltered set. Stats
// deliberately ignore the active filter so the dashboard can render
// "showing X of N total" without a second query.
type SummariesResult struct {
	Summaries []domain.ArticleSummary
	Stats     domain.DashboardStats
	Page      domain.PageMeta
}

// FetchSummariesUsecase runs the dashboard pipeline: fetch, normalize
// (gateway), aggregate, filter, paginate.
type FetchSummariesUsecase struct {
	fetchPort  summary_port.FetchSummariesPort
	fetchLimit int
}

func NewFetchSummariesUsecase(fetchPort summary_port.FetchSummariesPort, fetchLimit int) *FetchSummariesUsecase {
	return &FetchSummariesUsecase{fetchPort: fetchPort, fetchLimit: fetchLimit}
}

func (u *FetchSummariesUsecase) Execute(ctx context.Context, filter domain.SummaryFilter, page, pageSize int) (*SummariesResult, error) {
	all, err := u.fetchPort.Execute(ctx, u.fetchLimit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch summaries", "error", err)
		return nil, err
	}

	stats := domain.ComputeStats(all)
	filtered := domain.FilterSummaries(all, filter)
	items, meta := domain.Paginate(filtered, page, pageSize)

	logger.Logger.InfoContext(ctx, "summaries assembled",
		"total", stats.TotalSummaries,
		"filtered", meta.TotalItems,
		"page", meta.Page,
	)

	return &SummariesResult{
		Summaries: items,
		Stats:     stats,
		Page:      meta,
	}, nil
}
