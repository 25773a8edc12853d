package brief_db

import (
	"context"
	"errors"

	"marketbrief/domain"
	"marketbrief/driver/models"
	"marketbrief/utils/logger"

	"github.com/jackc/pgx/v5"
)

// FetchSummaryByID retrieves a single summary row. A missing row maps to
// domain.ErrSummaryNotFound so the REST layer can answer 404 distinctly.
func (r *BriefDBRepository) FetchSummaryByID(ctx context.Context, id int64) (*models.ArticleSummaryRow, error) {
	query := `
		SELECT` + summaryColumns + `
		FROM article_summaries
		WHERE id = $1
	`

	var row models.ArticleSummaryRow
	err := r.pool.QueryRow(ctx, query, id).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSummaryNotFound
		}
		logger.Logger.ErrorContext(ctx, "error fetching summary by id", "error", err, "id", id)
		return nil, errors.New("error fetching summary")
	}

	return &row, nil
}
