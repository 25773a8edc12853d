package fetch_summary_usecase

import (
	"context"

	"marketbrief/domain"
	"marketbrief/port/summary_port"
)

// FetchSummaryDetailUsecase resolves a single summary by id.
type FetchSummaryDetailUsecase struct {
	detailPort summary_port.SummaryDetailPort
}

func NewFetchSummaryDetailUsecase(detailPort summary_port.SummaryDetailPort) *FetchSummaryDetailUsecase {
	return &FetchSummaryDetailUsecase{detailPort: detailPort}
}

func (u *FetchSummaryDetailUsecase) Execute(ctx context.Context, id int64) (*domain.ArticleSummary, error) {
	return u.detailPort.Execute(ctx, id)
}
