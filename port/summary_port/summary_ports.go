package summary_port

//go:generate mockgen -source=summary_ports.go -destination=../../mocks/mock_summary_port.go -package=mocks

import (
	"context"

	"marketbrief/domain"
)

// FetchSummariesPort retrieves the newest normalized summaries, up to limit.
type FetchSummariesPort interface {
	Execute(ctx context.Context, limit int) ([]domain.ArticleSummary, error)
}

// SummaryDetailPort retrieves one normalized summary by id.
type SummaryDetailPort interface {
	Execute(ctx context.Context, id int64) (*domain.ArticleSummary, error)
}

// RegisterSummaryPort persists one summary draft and returns the stored id.
type RegisterSummaryPort interface {
	Execute(ctx context.Context, draft domain.SummaryDraft) (int64, error)
}

// DeleteSummaryPort removes one summary by id.
type DeleteSummaryPort interface {
	Execute(ctx context.Context, id int64) error
}
