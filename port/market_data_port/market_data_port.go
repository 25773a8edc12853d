package market_data_port

//go:generate mockgen -source=market_data_port.go -destination=../../mocks/mock_market_data_port.go -package=mocks

import (
	"context"

	"marketbrief/domain"
)

// FetchQuotePort retrieves one normalized quote from the provider.
type FetchQuotePort interface {
	Execute(ctx context.Context, symbol string) (*domain.Quote, error)
}

// MarketOverviewPort assembles the dashboard market panel.
type MarketOverviewPort interface {
	Execute(ctx context.Context) (*domain.MarketOverview, error)
}
