package mapping

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists field mapping declarations per batch.
type Repository interface {
	// FindByBatch returns the batch's mapping set, empty when none declared
	FindByBatch(ctx context.Context, batchID uuid.UUID) (Set, error)
	// ReplaceForBatch atomically replaces the batch's entire mapping set
	ReplaceForBatch(ctx context.Context, batchID uuid.UUID, mappings []FieldMapping) error
}
