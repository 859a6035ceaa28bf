package persistence

import (
	"context"

	"gorm.io/gorm"
)

// GormSequenceRepository implements ingest.SequenceRepository with an atomic
// per-scope counter table. The upsert-and-return runs as a single statement,
// so concurrent callers always get distinct values.
type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

func (r *GormSequenceRepository) Next(ctx context.Context, scope string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (scope, value) VALUES (?, 1)
		ON CONFLICT (scope) DO UPDATE SET value = sequences.value + 1
		RETURNING value`, scope).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
