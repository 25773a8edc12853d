package dashboard_usecase

import (
	"context"

	"marketbrief/domain"
	"marketbrief/port/summary_port"
	"marketbrief/utils/logger"
)

// DashboardStatsUsecase aggregates the full summary set into headline
// dashboard numbers. Filters never apply here.
type DashboardStatsUsecase struct {
	fetchPort  summary_port.FetchSummariesPort
	fetchLimit int
}

func NewDashboardStatsUsecase(fetchPort summary_port.FetchSummariesPort, fetchLimit int) *DashboardStatsUsecase {
	return &DashboardStatsUsecase{fetchPort: fetchPort, fetchLimit: fetchLimit}
}

func (u *DashboardStatsUsecase) Execute(ctx context.Context) (*domain.DashboardStats, error) {
	all, err := u.fetchPort.Execute(ctx, u.fetchLimit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch summaries for stats", "error", err)
		return nil, err
	}

	stats := domain.ComputeStats(all)
	return &stats, nil
}
