package ingest

import (
	"context"

	"github.com/google/uuid"
)

// BatchLock guards a batch against concurrent processing runs. Acquire
// returns false when another run already holds the lock; it never blocks.
type BatchLock interface {
	Acquire(ctx context.Context, batchID uuid.UUID) (bool, error)
	Release(ctx context.Context, batchID uuid.UUID) error
}
