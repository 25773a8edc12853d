package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		summaries []ArticleSummary
		want      DashboardStats
	}{
		{
			name:      "empty set yields zeroes",
			summaries: nil,
			want:      DashboardStats{},
		},
		{
			name: "counts sentiments case-insensitively",
			summaries: []ArticleSummary{
				{Analysis: SummaryAnalysis{Sentiment: "Positive", ConfidenceScore: 0.8}},
				{Analysis: SummaryAnalysis{Sentiment: "positive", ConfidenceScore: 0.6}},
				{Analysis: SummaryAnalysis{Sentiment: "NEGATIVE", ConfidenceScore: 0.4}},
				{Analysis: SummaryAnalysis{Sentiment: "neutral", ConfidenceScore: 0.2}},
			},
			want: DashboardStats{
				TotalSummaries: 4,
				Sentiments:     SentimentCounts{Positive: 2, Negative: 1, Neutral: 1},
				AvgConfidence:  0.5,
			},
		},
		{
			name: "unknown sentiment counts toward total only",
			summaries: []ArticleSummary{
				{Analysis: SummaryAnalysis{Sentiment: "bullish", ConfidenceScore: 0.9}},
				{Analysis: SummaryAnalysis{Sentiment: "", ConfidenceScore: 0.1}},
			},
			want: DashboardStats{
				TotalSummaries: 2,
				AvgConfidence:  0.5,
			},
		},
		{
			name: "average rounds to two decimals",
			summaries: []ArticleSummary{
				{Analysis: SummaryAnalysis{Sentiment: "positive", ConfidenceScore: 0.333}},
				{Analysis: SummaryAnalysis{Sentiment: "positive", ConfidenceScore: 0.333}},
				{Analysis: SummaryAnalysis{Sentiment: "positive", ConfidenceScore: 0.333}},
			},
			want: DashboardStats{
				TotalSummaries: 3,
				Sentiments:     SentimentCounts{Positive: 3},
				AvgConfidence:  0.33,
			},
		},
		{
			name: "absent confidence treated as zero",
			summaries: []ArticleSummary{
				{Analysis: SummaryAnalysis{Sentiment: "positive", ConfidenceScore: 0.82}},
				{Analysis: SummaryAnalysis{Sentiment: "negative"}},
			},
			want: DashboardStats{
				TotalSummaries: 2,
				Sentiments:     SentimentCounts{Positive: 1, Negative: 1},
				AvgConfidence:  0.41,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.summaries)
			assert.Equal(t, tt.want, got)
		})
	}
}
