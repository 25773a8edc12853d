package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummaries() []ArticleSummary {
	return []ArticleSummary{
		{
			ID:         1,
			SourceFile: "fed_rates.json",
			URL:        "https://news.example.com/fed-rates",
			Model:      "gpt-4o-mini",
			Analysis: SummaryAnalysis{
				Summary:                "Fed signals rate cuts ahead",
				InvestmentImplications: "Bond yields likely to fall",
				Sentiment:              "Positive",
				TimeHorizon:            "short-term",
				CompaniesMentioned:     []string{"JPMorgan"},
				SectorsAffected:        []string{"Financials"},
				KeyMetrics:             []string{"10Y yield 4.1%"},
			},
		},
		{
			ID:         2,
			SourceFile: "chip_glut.json",
			Model:      "gpt-4o-mini",
			Analysis: SummaryAnalysis{
				Summary:            "Chip inventory glut pressures margins",
				Sentiment:          "negative",
				TimeHorizon:        "medium-term",
				CompaniesMentioned: []string{"Nvidia", "TSMC"},
				SectorsAffected:    []string{"Semiconductors"},
			},
		},
		{
			ID:         3,
			SourceFile: "retail_flat.json",
			Analysis: SummaryAnalysis{
				Summary:     "Retail sales flat month over month",
				Sentiment:   "neutral",
				TimeHorizon: "short-term",
			},
		},
	}
}

func TestFilterSummaries(t *testing.T) {
	summaries := sampleSummaries()

	tests := []struct {
		name    string
		filter  SummaryFilter
		wantIDs []int64
	}{
		{
			name:    "zero filter passes all",
			filter:  SummaryFilter{},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "sentiment match is case-insensitive",
			filter:  SummaryFilter{Sentiment: "NEGATIVE"},
			wantIDs: []int64{2},
		},
		{
			name:    "time horizon match",
			filter:  SummaryFilter{TimeHorizon: "Short-Term"},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "search matches companies",
			filter:  SummaryFilter{Search: "nvidia"},
			wantIDs: []int64{2},
		},
		{
			name:    "search matches URL host",
			filter:  SummaryFilter{Search: "news.example.com"},
			wantIDs: []int64{1},
		},
		{
			name:    "search matches model identifier",
			filter:  SummaryFilter{Search: "gpt-4o"},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "predicates are ANDed",
			filter:  SummaryFilter{Sentiment: "positive", Search: "chip"},
			wantIDs: []int64{},
		},
		{
			name:    "whitespace-only search passes all",
			filter:  SummaryFilter{Search: "   "},
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSummaries(summaries, tt.filter)
			gotIDs := make([]int64, 0, len(got))
			for _, s := range got {
				gotIDs = append(gotIDs, s.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterSummaries_CompositionOrderIndependent(t *testing.T) {
	summaries := sampleSummaries()

	f1 := SummaryFilter{TimeHorizon: "short-term"}
	f2 := SummaryFilter{Search: "fed"}
	combined := SummaryFilter{TimeHorizon: "short-term", Search: "fed"}

	sequential := FilterSummaries(FilterSummaries(summaries, f1), f2)
	reversed := FilterSummaries(FilterSummaries(summaries, f2), f1)
	direct := FilterSummaries(summaries, combined)

	require.Equal(t, direct, sequential)
	require.Equal(t, direct, reversed)
}

func TestFilterSummaries_PreservesOrder(t *testing.T) {
	summaries := sampleSummaries()

	got := FilterSummaries(summaries, SummaryFilter{TimeHorizon: "short-term"})
	require.Len(t, got, 2)
	assert.True(t, got[0].ID < got[1].ID)
}
