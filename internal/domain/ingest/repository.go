package ingest

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// BatchRepository persists import batches.
type BatchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ImportBatch, error)
	FindByCode(ctx context.Context, code string) (*ImportBatch, error)
	Save(ctx context.Context, batch *ImportBatch) error
	Update(ctx context.Context, batch *ImportBatch) error
	List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ImportBatch], error)
}

// RowRepository persists the raw rows of imported batches.
type RowRepository interface {
	// SaveAll stores a batch's rows in one operation
	SaveAll(ctx context.Context, rows []*RawRow) error
	// FindByBatch returns the batch's rows ordered by row number
	FindByBatch(ctx context.Context, batchID uuid.UUID) ([]*RawRow, error)
	// Update persists processing state changes of one row
	Update(ctx context.Context, row *RawRow) error
	// CountByBatch returns total and processed row counts
	CountByBatch(ctx context.Context, batchID uuid.UUID) (total int, processed int, err error)
}

// SequenceRepository hands out monotonically increasing numbers per sequence
// scope. Batch codes use a per-day scope so codes read IMP-YYYYMMDD-NNNNNN.
type SequenceRepository interface {
	Next(ctx context.Context, scope string) (int64, error)
}
