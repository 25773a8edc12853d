// Package market_data_gateway adapts provider payloads into normalized
// domain quotes, applying per-field defaulting for the provider's
// inconsistent shapes.
package market_data_gateway

import (
	"context"
	"time"

	"marketbrief/domain"
	"marketbrief/driver/market_data"
	"marketbrief/driver/models"
	"marketbrief/utils/logger"
	"marketbrief/utils/metrics"
)

// trendingLimit caps how many trending symbols the overview resolves into
// full quotes; the provider list can run long.
const trendingLimit = 6

// FetchQuoteGateway resolves one symbol into a normalized quote.
type FetchQuoteGateway struct {
	client    *market_data.Client
	collector *metrics.Collector
}

func NewFetchQuoteGateway(client *market_data.Client, collector *metrics.Collector) *FetchQuoteGateway {
	return &FetchQuoteGateway{client: client, collector: collector}
}

func (g *FetchQuoteGateway) Execute(ctx context.Context, symbol string) (*domain.Quote, error) {
	payload, err := g.client.FetchQuote(ctx, symbol)
	if err != nil {
		g.recordOutcome(err)
		return nil, err
	}
	g.recordOutcome(nil)

	quote := toDomainQuote(*payload, time.Now().UTC())
	return &quote, nil
}

func (g *FetchQuoteGateway) recordOutcome(err error) {
	if g.collector == nil {
		return
	}
	switch err {
	case nil:
		g.collector.RecordProviderRequest("success")
	case domain.ErrMarketDataTimeout:
		g.collector.RecordProviderRequest("timeout")
	default:
		g.collector.RecordProviderRequest("error")
	}
}

// MarketOverviewGateway assembles the market panel: configured index quotes
// plus quotes for the provider's trending symbols. Trending failures degrade
// to a partial overview rather than failing the panel.
type MarketOverviewGateway struct {
	client       *market_data.Client
	indexSymbols []string
}

func NewMarketOverviewGateway(client *market_data.Client, indexSymbols []string) *MarketOverviewGateway {
	return &MarketOverviewGateway{client: client, indexSymbols: indexSymbols}
}

func (g *MarketOverviewGateway) Execute(ctx context.Context) (*domain.MarketOverview, error) {
	now := time.Now().UTC()

	indexPayloads, err := g.client.FetchQuotes(ctx, g.indexSymbols)
	if err != nil {
		return nil, err
	}

	overview := &domain.MarketOverview{
		Indices:  toDomainQuotes(indexPayloads, now),
		Trending: []domain.Quote{},
		AsOf:     now,
	}

	symbols, err := g.client.FetchTrending(ctx)
	if err != nil {
		logger.Logger.WarnContext(ctx, "trending symbols unavailable, serving indices only", "error", err)
		return overview, nil
	}
	if len(symbols) > trendingLimit {
		symbols = symbols[:trendingLimit]
	}
	if len(symbols) == 0 {
		return overview, nil
	}

	trendingPayloads, err := g.client.FetchQuotes(ctx, symbols)
	if err != nil {
		logger.Logger.WarnContext(ctx, "trending quotes unavailable, serving indices only", "error", err)
		return overview, nil
	}
	overview.Trending = toDomainQuotes(trendingPayloads, now)

	return overview, nil
}

func toDomainQuotes(payloads []models.QuotePayload, now time.Time) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(payloads))
	for _, p := range payloads {
		quotes = append(quotes, toDomainQuote(p, now))
	}
	return quotes
}

func toDomainQuote(p models.QuotePayload, now time.Time) domain.Quote {
	quote := domain.Quote{
		Symbol:    p.Symbol,
		UpdatedAt: now,
	}
	if p.ShortName != nil {
		quote.Name = *p.ShortName
	}
	if p.RegularPrice != nil {
		quote.Price = *p.RegularPrice
	}
	if p.RegularChange != nil {
		quote.Change = *p.RegularChange
	}
	if p.RegularChangePct != nil {
		quote.ChangePercent = *p.RegularChangePct
	}
	if p.Currency != nil {
		quote.Currency = *p.Currency
	}
	if p.Exchange != nil {
		quote.Exchange = *p.Exchange
	}
	if p.Volume != nil {
		quote.Volume = *p.Volume
	}
	if p.MarketCap != nil {
		quote.MarketCap = *p.MarketCap
	}
	if p.FiftyTwoWeekHigh != nil {
		quote.High52Week = *p.FiftyTwoWeekHigh
	}
	if p.FiftyTwoWeekLow != nil {
		quote.Low52Week = *p.FiftyTwoWeekLow
	}
	return quote
}
