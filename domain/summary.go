package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Sentiment categories assigned by the analysis pipeline.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Time horizon categories for investment implications.
const (
	HorizonShortTerm  = "short-term"
	HorizonMediumTerm = "medium-term"
	HorizonLongTerm   = "long-term"
)

// SummaryAnalysis holds the structured annotation decoded from a stored
// article-summary record. The list fields are always non-nil after
// normalization; a field that could not be decoded is an empty list.
type SummaryAnalysis struct {
	Summary                string   `json:"summary"`
	InvestmentImplications string   `json:"investment_implications"`
	Sentiment              string   `json:"sentiment"`
	TimeHorizon            string   `json:"time_horizon"`
	ConfidenceScore        float64  `json:"confidence_score"`
	KeyMetrics             []string `json:"key_metrics"`
	CompaniesMentioned     []string `json:"companies_mentioned"`
	SectorsAffected        []string `json:"sectors_affected"`
	RiskFactors            []string `json:"risk_factors"`
	Opportunities          []string `json:"opportunities"`
}

// ArticleSummary is the normalized, in-memory view of one persisted
// article-summary record. It is rebuilt per request and never persisted.
type ArticleSummary struct {
	ID          int64           `json:"id"`
	SourceFile  string          `json:"source_file"`
	URL         string          `json:"url,omitempty"`
	Model       string          `json:"model"`
	ProcessedAt time.Time       `json:"processed_at"`
	Analysis    SummaryAnalysis `json:"analysis"`
}

// SummaryDraft is the inbound shape for registering one analyzed article.
// The pipeline posts one draft per processed source file; registering the
// same source file again replaces the previous analysis.
type SummaryDraft struct {
	SourceFile  string          `json:"source_file"`
	URL         string          `json:"url,omitempty"`
	Model       string          `json:"model"`
	RawResponse string          `json:"raw_response,omitempty"`
	ProcessedAt time.Time       `json:"processed_at"`
	Analysis    SummaryAnalysis `json:"analysis"`
}

// Validate reports the first problem with a draft, if any.
func (d SummaryDraft) Validate() error {
	if strings.TrimSpace(d.SourceFile) == "" {
		return ErrSummaryInvalid
	}
	if d.Analysis.ConfidenceScore < 0 || d.Analysis.ConfidenceScore > 1 {
		return ErrSummaryInvalid
	}
	return nil
}

// SentimentLabel returns the display form of a sentiment value. Unrecognized
// or empty values render as "Unknown".
func SentimentLabel(sentiment string) string {
	switch strings.ToLower(strings.TrimSpace(sentiment)) {
	case SentimentPositive:
		return "Positive"
	case SentimentNegative:
		return "Negative"
	case SentimentNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// ConfidenceLabel renders a 0-1 confidence score as "NN% High|Medium|Low".
func ConfidenceLabel(score float64) string {
	percent := int(math.Round(score * 100))
	level := "Low"
	switch {
	case score >= 0.8:
		level = "High"
	case score >= 0.5:
		level = "Medium"
	}
	return fmt.Sprintf("%d%% %s", percent, level)
}
