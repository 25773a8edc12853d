package brief_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository uses. pgxmock
// satisfies it in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

// BriefDBRepository owns all SQL against the article_summaries store.
type BriefDBRepository struct {
	pool DBPool
}

func NewBriefDBRepository(pool DBPool) *BriefDBRepository {
	return &BriefDBRepository{pool: pool}
}
