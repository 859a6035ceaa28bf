package ingest

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// maxReportedErrors caps the error details returned from one run; the full
// error text is always stored on the rows themselves.
const maxReportedErrors = 100

// ProcessorService runs batches: it converts a batch's unprocessed rows into
// ledger events in one transaction.
//
// Runs are idempotent at the row level. Rows already marked processed are
// skipped, so rerunning a batch after fixing its mappings only touches the
// rows that failed before. A per-batch lock rejects concurrent runs of the
// same batch; the single transaction means observers see either the ledger
// before the run or after it, never a half-applied batch.
type ProcessorService struct {
	batchRepo   ingest.BatchRepository
	mappingRepo mapping.Repository
	txScope     TransactionScope
	lock        BatchLock
	logger      *zap.Logger
}

func NewProcessorService(
	batchRepo ingest.BatchRepository,
	mappingRepo mapping.Repository,
	txScope TransactionScope,
	lock BatchLock,
	logger *zap.Logger,
) *ProcessorService {
	return &ProcessorService{
		batchRepo:   batchRepo,
		mappingRepo: mappingRepo,
		txScope:     txScope,
		lock:        lock,
		logger:      logger,
	}
}

// Process runs one batch. Batch-scoped failures (unknown batch, unsupported
// kind, missing mappings, held lock) abort before any row is touched. Row
// failures are recorded on the rows and the run continues; they surface in
// the result, not as an error.
func (s *ProcessorService) Process(ctx context.Context, batchID uuid.UUID) (*ProcessResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "batch_processor", "process",
		attribute.String("batch.id", batchID.String()))
	defer span.End()

	result, err := s.run(ctx, batchID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("batch.code", result.BatchCode),
		attribute.Int("rows.total", result.TotalRows),
		attribute.Int("rows.processed", result.ProcessedRows),
		attribute.Int("rows.errors", result.ErrorRows),
	)
	return result, nil
}

func (s *ProcessorService) run(ctx context.Context, batchID uuid.UUID) (*ProcessResult, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !batch.Kind.Processable() {
		return nil, ingest.ErrUnsupportedBatchKind(batch.Code, batch.Kind)
	}

	mappings, err := s.mappingRepo.FindByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, ingest.ErrNoMappingDefined(batch.Code)
	}
	if err := mappings.Validate(); err != nil {
		return nil, err
	}

	acquired, err := s.lock.Acquire(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ingest.ErrBatchInFlight(batch.Code)
	}
	defer func() {
		if err := s.lock.Release(ctx, batchID); err != nil {
			s.logger.Warn("releasing batch lock failed",
				zap.String("code", batch.Code), zap.Error(err))
		}
	}()

	result := &ProcessResult{BatchCode: batch.Code}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		rows, err := repos.RowRepo().FindByBatch(ctx, batchID)
		if err != nil {
			return err
		}
		result.TotalRows = len(rows)

		normalizer := newRowNormalizer(repos, batch, mappings)

		processed := 0
		failed := 0
		for _, row := range rows {
			if row.Processed {
				processed++
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if rowErr := normalizer.processRow(ctx, row); rowErr != nil {
				failed++
				row.MarkFailed(rowErr.Error())
				if len(result.Errors) < maxReportedErrors {
					result.Errors = append(result.Errors, RowError{
						RowNumber: row.RowNumber,
						Message:   rowErr.Error(),
					})
				}
			} else {
				processed++
				row.MarkProcessed()
			}
			if err := repos.RowRepo().Update(ctx, row); err != nil {
				return err
			}
		}

		result.ProcessedRows = processed
		result.ErrorRows = failed

		batch.RecordRun(processed, failed)
		return repos.BatchRepo().Update(ctx, batch)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("batch processed",
		zap.String("code", batch.Code),
		zap.Int("total", result.TotalRows),
		zap.Int("processed", result.ProcessedRows),
		zap.Int("errors", result.ErrorRows))
	return result, nil
}
