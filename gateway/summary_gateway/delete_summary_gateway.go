package summary_gateway

import (
	"context"
	stderrors "errors"

	"marketbrief/domain"
	"marketbrief/driver/brief_db"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"
)

// DeleteSummaryGateway removes summary rows.
type DeleteSummaryGateway struct {
	repository *brief_db.BriefDBRepository
}

func NewDeleteSummaryGateway(pool brief_db.DBPool) *DeleteSummaryGateway {
	gateway := &DeleteSummaryGateway{}
	if pool != nil {
		gateway.repository = brief_db.NewBriefDBRepository(pool)
	}
	return gateway
}

func (g *DeleteSummaryGateway) Execute(ctx context.Context, id int64) error {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "DeleteSummaryGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return dbErr
	}

	if err := g.repository.DeleteSummary(ctx, id); err != nil {
		if stderrors.Is(err, domain.ErrSummaryNotFound) {
			return err
		}
		dbErr := errors.DatabaseError("failed to delete summary", err, map[string]interface{}{
			"gateway": "DeleteSummaryGateway",
			"id":      id,
		})
		errors.LogError(logger.Logger, dbErr, "delete_summary")
		return dbErr
	}

	return nil
}
