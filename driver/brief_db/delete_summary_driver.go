package brief_db

import (
	"context"
	"errors"

	"marketbrief/domain"
	"marketbrief/utils/logger"
)

// DeleteSummary removes one summary row. Deleting a missing id maps to
// domain.ErrSummaryNotFound.
func (r *BriefDBRepository) DeleteSummary(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM article_summaries WHERE id = $1`, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error deleting summary", "error", err, "id", id)
		return errors.New("error deleting summary")
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSummaryNotFound
	}

	return nil
}
