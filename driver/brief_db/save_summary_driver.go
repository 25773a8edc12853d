package brief_db

import (
	"context"
	"errors"

	"marketbrief/driver/models"
	"marketbrief/utils/logger"
)

// SaveSummary inserts one summary row, replacing any previous analysis of
// the same source file. Returns the stored row's id.
func (r *BriefDBRepository) SaveSummary(ctx context.Context, row models.ArticleSummaryRow) (int64, error) {
	query := `
		INSERT INTO article_summaries (
			source_file,
			url,
			processed_at,
			model,
			raw_response,
			summary,
			investment_implications,
			sentiment,
			time_horizon,
			confidence_score,
			key_metrics,
			companies_mentioned,
			sectors_affected,
			risk_factors,
			opportunities,
			collection_url_id,
			pipeline_run_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (source_file) DO UPDATE SET
			url = EXCLUDED.url,
			processed_at = EXCLUDED.processed_at,
			model = EXCLUDED.model,
			raw_response = EXCLUDED.raw_response,
			summary = EXCLUDED.summary,
			investment_implications = EXCLUDED.investment_implications,
			sentiment = EXCLUDED.sentiment,
			time_horizon = EXCLUDED.time_horizon,
			confidence_score = EXCLUDED.confidence_score,
			key_metrics = EXCLUDED.key_metrics,
			companies_mentioned = EXCLUDED.companies_mentioned,
			sectors_affected = EXCLUDED.sectors_affected,
			risk_factors = EXCLUDED.risk_factors,
			opportunities = EXCLUDED.opportunities,
			collection_url_id = EXCLUDED.collection_url_id,
			pipeline_run_id = EXCLUDED.pipeline_run_id
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		row.SourceFile,
		row.URL,
		row.ProcessedAt,
		row.Model,
		row.RawResponse,
		row.Summary,
		row.InvestmentImplications,
		row.Sentiment,
		row.TimeHorizon,
		row.ConfidenceScore,
		row.KeyMetrics,
		row.CompaniesMentioned,
		row.SectorsAffected,
		row.RiskFactors,
		row.Opportunities,
		row.CollectionURLID,
		row.PipelineRunID,
	).Scan(&id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error saving summary", "error", err, "source_file", row.SourceFile)
		return 0, errors.New("error saving summary")
	}

	return id, nil
}
