package fetch_market_usecase

import (
	"context"
	"strings"

	"marketbrief/domain"
	"marketbrief/port/market_data_port"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"
)

// FetchQuoteUsecase resolves one market quote by ticker symbol.
type FetchQuoteUsecase struct {
	quotePort market_data_port.FetchQuotePort
}

func NewFetchQuoteUsecase(quotePort market_data_port.FetchQuotePort) *FetchQuoteUsecase {
	return &FetchQuoteUsecase{quotePort: quotePort}
}

func (u *FetchQuoteUsecase) Execute(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errors.ValidationError("symbol must not be empty", nil)
	}

	quote, err := u.quotePort.Execute(ctx, symbol)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch quote", "error", err, "symbol", symbol)
		return nil, err
	}
	return quote, nil
}
