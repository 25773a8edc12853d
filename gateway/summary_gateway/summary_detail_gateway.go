package summary_gateway

import (
	"context"
	stderrors "errors"

	"marketbrief/domain"
	"marketbrief/driver/brief_db"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"
)

// SummaryDetailGateway reads one summary row by id.
type SummaryDetailGateway struct {
	repository *brief_db.BriefDBRepository
}

func NewSummaryDetailGateway(pool brief_db.DBPool) *SummaryDetailGateway {
	gateway := &SummaryDetailGateway{}
	if pool != nil {
		gateway.repository = brief_db.NewBriefDBRepository(pool)
	}
	return gateway
}

func (g *SummaryDetailGateway) Execute(ctx context.Context, id int64) (*domain.ArticleSummary, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "SummaryDetailGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	row, err := g.repository.FetchSummaryByID(ctx, id)
	if err != nil {
		// Not-found keeps its identity so the REST layer can answer 404.
		if stderrors.Is(err, domain.ErrSummaryNotFound) {
			return nil, err
		}
		dbErr := errors.DatabaseError("failed to fetch summary", err, map[string]interface{}{
			"gateway": "SummaryDetailGateway",
			"id":      id,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_summary_by_id")
		return nil, dbErr
	}

	summary := normalizeRow(*row)
	return &summary, nil
}
