package persistence

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRowRepository implements ingest.RowRepository using GORM
type GormRowRepository struct {
	db *gorm.DB
}

func NewGormRowRepository(db *gorm.DB) *GormRowRepository {
	return &GormRowRepository{db: db}
}

func (r *GormRowRepository) SaveAll(ctx context.Context, rows []*ingest.RawRow) error {
	if len(rows) == 0 {
		return nil
	}
	rowModels := make([]*models.RawRowModel, len(rows))
	for i, row := range rows {
		rowModels[i] = models.RawRowModelFromDomain(row)
	}
	return r.db.WithContext(ctx).CreateInBatches(rowModels, 500).Error
}

func (r *GormRowRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) ([]*ingest.RawRow, error) {
	var rowModels []models.RawRowModel
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("row_number ASC").
		Find(&rowModels).Error; err != nil {
		return nil, err
	}
	rows := make([]*ingest.RawRow, len(rowModels))
	for i := range rowModels {
		rows[i] = rowModels[i].ToDomain()
	}
	return rows, nil
}

func (r *GormRowRepository) Update(ctx context.Context, row *ingest.RawRow) error {
	return r.db.WithContext(ctx).
		Model(&models.RawRowModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"processed":  row.Processed,
			"error":      row.Error,
			"updated_at": row.UpdatedAt,
		}).Error
}

func (r *GormRowRepository) CountByBatch(ctx context.Context, batchID uuid.UUID) (int, int, error) {
	var total, processed int64
	if err := r.db.WithContext(ctx).
		Model(&models.RawRowModel{}).
		Where("batch_id = ?", batchID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.RawRowModel{}).
		Where("batch_id = ? AND processed = ?", batchID, true).
		Count(&processed).Error; err != nil {
		return 0, 0, err
	}
	return int(total), int(processed), nil
}
