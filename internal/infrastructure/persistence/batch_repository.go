package persistence

import (
	"context"
	"errors"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBatchRepository implements ingest.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*ingest.ImportBatch, error) {
	var model models.ImportBatchModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormBatchRepository) FindByCode(ctx context.Context, code string) (*ingest.ImportBatch, error) {
	var model models.ImportBatchModel
	if err := r.db.WithContext(ctx).First(&model, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormBatchRepository) Save(ctx context.Context, batch *ingest.ImportBatch) error {
	model := models.ImportBatchModelFromDomain(batch)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists batch changes with an optimistic version check. A stale
// version means another run already updated the batch.
func (r *GormBatchRepository) Update(ctx context.Context, batch *ingest.ImportBatch) error {
	model := models.ImportBatchModelFromDomain(batch)
	model.Version = batch.Version + 1

	result := r.db.WithContext(ctx).
		Model(&models.ImportBatchModel{}).
		Where("id = ? AND version = ?", batch.ID, batch.Version).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	batch.IncrementVersion()
	return nil
}

func (r *GormBatchRepository) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ingest.ImportBatch], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var total int64
	base := r.db.WithContext(ctx).Model(&models.ImportBatchModel{})
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	var batchModels []models.ImportBatchModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ImportBatchModel{}), filter, "code", "created_at")
	if err := query.Find(&batchModels).Error; err != nil {
		return nil, err
	}

	batches := make([]ingest.ImportBatch, len(batchModels))
	for i, model := range batchModels {
		batches[i] = *model.ToDomain()
	}
	page := shared.NewPaginated(batches, total, filter.Page, filter.PageSize)
	return &page, nil
}
