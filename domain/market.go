package domain

import "time"

// Quote is the normalized view of one provider quote. The provider omits
// fields inconsistently, so everything beyond the symbol defaults to zero
// values rather than failing the whole response.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name,omitempty"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Currency      string    `json:"currency,omitempty"`
	Exchange      string    `json:"exchange,omitempty"`
	Volume        int64     `json:"volume,omitempty"`
	MarketCap     float64   `json:"market_cap,omitempty"`
	High52Week    float64   `json:"high_52_week,omitempty"`
	Low52Week     float64   `json:"low_52_week,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarketOverview bundles the dashboard's market panel: configured index
// quotes and the provider's trending symbols. Either list may be short when
// individual lookups fail; partial data is not an error.
type MarketOverview struct {
	Indices  []Quote   `json:"indices"`
	Trending []Quote   `json:"trending"`
	AsOf     time.Time `json:"as_of"`
}
