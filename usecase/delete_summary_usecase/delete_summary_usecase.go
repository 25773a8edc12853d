package delete_summary_usecase

import (
	"context"

	"marketbrief/port/summary_port"
	"marketbrief/utils/logger"
)

// DeleteSummaryUsecase removes a summary by id.
type DeleteSummaryUsecase struct {
	deletePort summary_port.DeleteSummaryPort
}

func NewDeleteSummaryUsecase(deletePort summary_port.DeleteSummaryPort) *DeleteSummaryUsecase {
	return &DeleteSummaryUsecase{deletePort: deletePort}
}

func (u *DeleteSummaryUsecase) Execute(ctx context.Context, id int64) error {
	if err := u.deletePort.Execute(ctx, id); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to delete summary", "error", err, "id", id)
		return err
	}
	logger.Logger.InfoContext(ctx, "summary deleted", "id", id)
	return nil
}
