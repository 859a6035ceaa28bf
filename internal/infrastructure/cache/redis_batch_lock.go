package cache

import (
	"context"
	"fmt"
	"time"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "import:lock:"

// RedisBatchLock implements the batch processing lock on Redis. Suitable for
// deployments with more than one server instance, where two operators could
// trigger a run of the same batch against different instances.
type RedisBatchLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBatchLock connects to Redis and verifies the connection.
func NewRedisBatchLock(cfg *config.RedisConfig, ttl time.Duration) (*RedisBatchLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBatchLock{client: client, ttl: ttl}, nil
}

// NewRedisBatchLockWithClient wraps an existing client. Useful for testing or
// when sharing a client across components.
func NewRedisBatchLockWithClient(client *redis.Client, ttl time.Duration) *RedisBatchLock {
	return &RedisBatchLock{client: client, ttl: ttl}
}

// Acquire takes the lock for a batch via SETNX. The TTL bounds how long a
// crashed run can leave a batch locked.
func (l *RedisBatchLock) Acquire(ctx context.Context, batchID uuid.UUID) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKeyPrefix+batchID.String(), "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire batch lock: %w", err)
	}
	return ok, nil
}

func (l *RedisBatchLock) Release(ctx context.Context, batchID uuid.UUID) error {
	if err := l.client.Del(ctx, lockKeyPrefix+batchID.String()).Err(); err != nil {
		return fmt.Errorf("failed to release batch lock: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (l *RedisBatchLock) Close() error {
	return l.client.Close()
}

var _ appingest.BatchLock = (*RedisBatchLock)(nil)
