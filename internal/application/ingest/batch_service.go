package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchService registers import batches and stores their raw rows.
type BatchService struct {
	batchRepo ingest.BatchRepository
	rowRepo   ingest.RowRepository
	seqRepo   ingest.SequenceRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewBatchService(
	batchRepo ingest.BatchRepository,
	rowRepo ingest.RowRepository,
	seqRepo ingest.SequenceRepository,
	logger *zap.Logger,
) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		rowRepo:   rowRepo,
		seqRepo:   seqRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates a batch with a generated code of the form
// IMP-YYYYMMDD-NNNNNN. The numeric part comes from a per-day sequence, so
// codes sort chronologically and never collide across concurrent registrations.
func (s *BatchService) Register(ctx context.Context, input RegisterBatchInput) (*ingest.ImportBatch, error) {
	day := s.now().UTC().Format("20060102")
	n, err := s.seqRepo.Next(ctx, "batch:"+day)
	if err != nil {
		return nil, fmt.Errorf("allocating batch code: %w", err)
	}
	code := fmt.Sprintf("IMP-%s-%06d", day, n)

	batch, err := ingest.NewImportBatch(code, input.Name, input.Kind, input.Platform, input.SheetName)
	if err != nil {
		return nil, err
	}
	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	s.logger.Info("batch registered",
		zap.String("code", batch.Code),
		zap.String("kind", string(batch.Kind)))
	return batch, nil
}

// AttachRows stores the imported sheet's rows for a batch. Rows can only be
// attached once; re-importing means registering a new batch.
func (s *BatchService) AttachRows(ctx context.Context, batchID uuid.UUID, rows []map[string]string) (*ingest.ImportBatch, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.TotalRows > 0 {
		return nil, shared.NewDomainError("ROWS_ALREADY_ATTACHED",
			fmt.Sprintf("Batch %s already has %d rows", batch.Code, batch.TotalRows))
	}
	if len(rows) == 0 {
		return nil, shared.NewDomainError("EMPTY_SHEET", "Imported sheet has no data rows")
	}

	rawRows := make([]*ingest.RawRow, len(rows))
	for i, data := range rows {
		rawRows[i] = ingest.NewRawRow(batchID, i+1, data)
	}
	if err := s.rowRepo.SaveAll(ctx, rawRows); err != nil {
		return nil, err
	}

	batch.RecordRows(len(rawRows))
	if err := s.batchRepo.Update(ctx, batch); err != nil {
		return nil, err
	}

	s.logger.Info("rows attached",
		zap.String("code", batch.Code),
		zap.Int("rows", len(rawRows)))
	return batch, nil
}

// GetBatch returns one batch by ID.
func (s *BatchService) GetBatch(ctx context.Context, batchID uuid.UUID) (*ingest.ImportBatch, error) {
	return s.batchRepo.FindByID(ctx, batchID)
}

// ListBatches returns a page of batches, newest first.
func (s *BatchService) ListBatches(ctx context.Context, filter shared.Filter) (*shared.Paginated[ingest.ImportBatch], error) {
	return s.batchRepo.List(ctx, filter)
}

// GetRows returns a batch's raw rows in sheet order.
func (s *BatchService) GetRows(ctx context.Context, batchID uuid.UUID) ([]*ingest.RawRow, error) {
	if _, err := s.batchRepo.FindByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.rowRepo.FindByBatch(ctx, batchID)
}
