package market_data_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"marketbrief/config"
	"marketbrief/domain"
	"marketbrief/driver/market_data"
	"marketbrief/driver/models"
	"marketbrief/utils/logger"
	"marketbrief/utils/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *market_data.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.MarketConfig{
		ProviderURL:       server.URL,
		RequestTimeout:    time.Second,
		RateLimitInterval: time.Millisecond,
	}
	return market_data.NewClientWithHTTP(cfg, server.Client())
}

func TestToDomainQuote_Defaulting(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	name := "Apple Inc."
	price := 230.1

	full := toDomainQuote(models.QuotePayload{
		Symbol:       "AAPL",
		ShortName:    &name,
		RegularPrice: &price,
	}, now)
	assert.Equal(t, "Apple Inc.", full.Name)
	assert.Equal(t, 230.1, full.Price)
	assert.Equal(t, now, full.UpdatedAt)

	sparse := toDomainQuote(models.QuotePayload{Symbol: "^GSPC"}, now)
	assert.Equal(t, "^GSPC", sparse.Symbol)
	assert.Zero(t, sparse.Price)
	assert.Empty(t, sparse.Currency)
}

func TestFetchQuoteGateway_Execute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quotes":[{"symbol":"AAPL","regularMarketPrice":230.1}]}`))
	})

	gateway := NewFetchQuoteGateway(client, metrics.NewCollector())

	quote, err := gateway.Execute(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, 230.1, quote.Price)
}

func TestMarketOverviewGateway_Execute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/trending":
			_, _ = w.Write([]byte(`{"symbols":["NVDA"]}`))
		default:
			symbols := r.URL.Query().Get("symbols")
			if symbols == "NVDA" {
				_, _ = w.Write([]byte(`{"quotes":[{"symbol":"NVDA","regularMarketPrice":130.5}]}`))
				return
			}
			_, _ = w.Write([]byte(`{"quotes":[{"symbol":"^GSPC","regularMarketPrice":6400.2},{"symbol":"^DJI"}]}`))
		}
	})

	gateway := NewMarketOverviewGateway(client, []string{"^GSPC", "^DJI"})

	overview, err := gateway.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.Indices, 2)
	require.Len(t, overview.Trending, 1)
	assert.Equal(t, "NVDA", overview.Trending[0].Symbol)
	assert.False(t, overview.AsOf.IsZero())
}

func TestMarketOverviewGateway_TrendingFailureIsPartial(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/trending" {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"quotes":[{"symbol":"^GSPC"}]}`))
	})

	gateway := NewMarketOverviewGateway(client, []string{"^GSPC"})

	overview, err := gateway.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.Indices, 1)
	assert.Empty(t, overview.Trending)
}

func TestMarketOverviewGateway_IndexFailureIsFatal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	gateway := NewMarketOverviewGateway(client, []string{"^GSPC"})

	_, err := gateway.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrMarketDataUnavailable)
}
