package models

// QuotePayload is the provider's quote shape. Field presence is
// inconsistent across symbols and endpoints, so everything beyond the
// symbol is a pointer and the gateway applies defaults.
type QuotePayload struct {
	Symbol           string   `json:"symbol"`
	ShortName        *string  `json:"shortName"`
	RegularPrice     *float64 `json:"regularMarketPrice"`
	RegularChange    *float64 `json:"regularMarketChange"`
	RegularChangePct *float64 `json:"regularMarketChangePercent"`
	Currency         *string  `json:"currency"`
	Exchange         *string  `json:"fullExchangeName"`
	Volume           *int64   `json:"regularMarketVolume"`
	MarketCap        *float64 `json:"marketCap"`
	FiftyTwoWeekHigh *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  *float64 `json:"fiftyTwoWeekLow"`
}

// QuoteResponse wraps the provider's single and batch quote endpoints.
type QuoteResponse struct {
	Quotes []QuotePayload `json:"quotes"`
	Error  *string        `json:"error"`
}

// TrendingResponse is the provider's trending-symbols endpoint shape.
type TrendingResponse struct {
	Symbols []string `json:"symbols"`
}
