package domain

import (
	"math"
	"strings"
)

// SentimentCounts breaks the dataset down by the three known sentiment
// categories. Records with an unrecognized or empty sentiment contribute to
// the total but to none of the buckets.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// DashboardStats is the per-request aggregate over the full summary set.
type DashboardStats struct {
	TotalSummaries int             `json:"total_summaries"`
	Sentiments     SentimentCounts `json:"sentiments"`
	AvgConfidence  float64         `json:"avg_confidence"`
}

// ComputeStats reduces a normalized summary set into dashboard statistics.
// Sentiment matching is case-insensitive. The average confidence is rounded
// to two decimals; an empty set yields zero, not NaN.
func ComputeStats(summaries []ArticleSummary) DashboardStats {
	stats := DashboardStats{TotalSummaries: len(summaries)}

	var confidenceSum float64
	for _, s := range summaries {
		confidenceSum += s.Analysis.ConfidenceScore
		switch strings.ToLower(s.Analysis.Sentiment) {
		case SentimentPositive:
			stats.Sentiments.Positive++
		case SentimentNegative:
			stats.Sentiments.Negative++
		case SentimentNeutral:
			stats.Sentiments.Neutral++
		}
	}

	if len(summaries) > 0 {
		stats.AvgConfidence = math.Round(confidenceSum/float64(len(summaries))*100) / 100
	}

	return stats
}
