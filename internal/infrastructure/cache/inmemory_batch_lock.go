package cache

import (
	"context"
	"sync"
	"time"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	"github.com/google/uuid"
)

// InMemoryBatchLock implements the batch processing lock with a mutex-guarded
// map. Suitable for single-instance deployments and testing. Locks expire
// after the TTL so a crashed run cannot wedge a batch forever.
type InMemoryBatchLock struct {
	mu    sync.Mutex
	held  map[uuid.UUID]time.Time
	ttl   time.Duration
	clock func() time.Time
}

func NewInMemoryBatchLock(ttl time.Duration) *InMemoryBatchLock {
	return &InMemoryBatchLock{
		held:  make(map[uuid.UUID]time.Time),
		ttl:   ttl,
		clock: time.Now,
	}
}

func (l *InMemoryBatchLock) Acquire(_ context.Context, batchID uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if expiresAt, exists := l.held[batchID]; exists && now.Before(expiresAt) {
		return false, nil
	}
	l.held[batchID] = now.Add(l.ttl)
	return true, nil
}

func (l *InMemoryBatchLock) Release(_ context.Context, batchID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, batchID)
	return nil
}

var _ appingest.BatchLock = (*InMemoryBatchLock)(nil)
