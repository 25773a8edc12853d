package fetch_market_usecase

import (
	"context"

	"marketbrief/domain"
	"marketbrief/port/market_data_port"
	"marketbrief/utils/logger"
)

// MarketOverviewUsecase assembles the index and trending panel.
type MarketOverviewUsecase struct {
	overviewPort market_data_port.MarketOverviewPort
}

func NewMarketOverviewUsecase(overviewPort market_data_port.MarketOverviewPort) *MarketOverviewUsecase {
	return &MarketOverviewUsecase{overviewPort: overviewPort}
}

func (u *MarketOverviewUsecase) Execute(ctx context.Context) (*domain.MarketOverview, error) {
	overview, err := u.overviewPort.Execute(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to assemble market overview", "error", err)
		return nil, err
	}
	return overview, nil
}
