package domain

import "errors"

var (
	// Summary record errors
	ErrSummaryNotFound = errors.New("summary not found")
	ErrSummaryInvalid  = errors.New("summary is invalid")

	// Market data errors
	ErrMarketDataUnavailable = errors.New("market data provider unavailable")
	ErrMarketDataTimeout     = errors.New("market data request timed out")
	ErrSymbolNotFound        = errors.New("symbol not found")
)
