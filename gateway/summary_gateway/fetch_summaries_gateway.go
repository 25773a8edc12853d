package summary_gateway

import (
	"context"

	"marketbrief/domain"
	"marketbrief/driver/brief_db"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"
)

// FetchSummariesGateway reads summary rows and hands back normalized views.
type FetchSummariesGateway struct {
	repository *brief_db.BriefDBRepository
}

func NewFetchSummariesGateway(pool brief_db.DBPool) *FetchSummariesGateway {
	gateway := &FetchSummariesGateway{}
	if pool != nil {
		gateway.repository = brief_db.NewBriefDBRepository(pool)
	}
	return gateway
}

func (g *FetchSummariesGateway) Execute(ctx context.Context, limit int) ([]domain.ArticleSummary, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "FetchSummariesGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	rows, err := g.repository.FetchSummaries(ctx, limit)
	if err != nil {
		dbErr := errors.DatabaseError("failed to fetch summaries", err, map[string]interface{}{
			"gateway": "FetchSummariesGateway",
			"limit":   limit,
		})
		errors.LogError(logger.Logger, dbErr, "fetch_summaries")
		return nil, dbErr
	}

	summaries := make([]domain.ArticleSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, normalizeRow(row))
	}

	return summaries, nil
}
