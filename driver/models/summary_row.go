package models

import "time"

// ArticleSummaryRow mirrors one article_summaries row as stored. The five
// list-valued annotation fields are JSON-encoded text columns; nullable
// columns are pointers so absence survives the round trip to the gateway,
// where normalization applies the defaults.
type ArticleSummaryRow struct {
	ID                     int64      `db:"id"`
	SourceFile             string     `db:"source_file"`
	URL                    *string    `db:"url"`
	ProcessedAt            time.Time  `db:"processed_at"`
	Model                  string     `db:"model"`
	RawResponse            *string    `db:"raw_response"`
	Summary                *string    `db:"summary"`
	InvestmentImplications *string    `db:"investment_implications"`
	Sentiment              *string    `db:"sentiment"`
	TimeHorizon            *string    `db:"time_horizon"`
	ConfidenceScore        *float64   `db:"confidence_score"`
	KeyMetrics             *string    `db:"key_metrics"`
	CompaniesMentioned     *string    `db:"companies_mentioned"`
	SectorsAffected        *string    `db:"sectors_affected"`
	RiskFactors            *string    `db:"risk_factors"`
	Opportunities          *string    `db:"opportunities"`
	CollectionURLID        *int64     `db:"collection_url_id"`
	PipelineRunID          *int64     `db:"pipeline_run_id"`
}
