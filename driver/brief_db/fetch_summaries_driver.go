package brief_db

import (
	"context"
	"errors"

	"marketbrief/driver/models"
	"marketbrief/utils/logger"
)

const summaryColumns = `
		id,
		source_file,
		url,
		processed_at,
		model,
		summary,
		investment_implications,
		sentiment,
		time_horizon,
		confidence_score,
		key_metrics,
		companies_mentioned,
		sectors_affected,
		risk_factors,
		opportunities
`

// FetchSummaries retrieves the most recent summary rows, newest first. The
// limit is the caller's safety cap on how much one request materializes.
func (r *BriefDBRepository) FetchSummaries(ctx context.Context, limit int) ([]models.ArticleSummaryRow, error) {
	query := `
		SELECT` + summaryColumns + `
		FROM article_summaries
		ORDER BY processed_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching summaries", "error", err, "limit", limit)
		return nil, errors.New("error fetching summaries")
	}
	defer rows.Close()

	var summaries []models.ArticleSummaryRow
	for rows.Next() {
		var row models.ArticleSummaryRow
		err := rows.Scan(
			&row.ID,
			&row.SourceFile,
			&row.URL,
			&row.ProcessedAt,
			&row.Model,
			&row.Summary,
			&row.InvestmentImplications,
			&row.Sentiment,
			&row.TimeHorizon,
			&row.ConfidenceScore,
			&row.KeyMetrics,
			&row.CompaniesMentioned,
			&row.SectorsAffected,
			&row.RiskFactors,
			&row.Opportunities,
		)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning summary row", "error", err)
			return nil, errors.New("error scanning summary row")
		}
		summaries = append(summaries, row)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating summary rows", "error", err)
		return nil, errors.New("error fetching summaries")
	}

	return summaries, nil
}
