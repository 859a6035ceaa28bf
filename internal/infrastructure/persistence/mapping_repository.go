package persistence

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMappingRepository implements mapping.Repository using GORM
type GormMappingRepository struct {
	db *gorm.DB
}

func NewGormMappingRepository(db *gorm.DB) *GormMappingRepository {
	return &GormMappingRepository{db: db}
}

func (r *GormMappingRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) (mapping.Set, error) {
	var mappingModels []models.FieldMappingModel
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}
	set := make(mapping.Set, len(mappingModels))
	for i := range mappingModels {
		set[i] = mappingModels[i].ToDomain()
	}
	return set, nil
}

// ReplaceForBatch swaps the batch's mapping set in one transaction, so a
// failed replace never leaves a partial set behind.
func (r *GormMappingRepository) ReplaceForBatch(ctx context.Context, batchID uuid.UUID, mappings []mapping.FieldMapping) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FieldMappingModel{}, "batch_id = ?", batchID).Error; err != nil {
			return err
		}
		if len(mappings) == 0 {
			return nil
		}
		mappingModels := make([]*models.FieldMappingModel, len(mappings))
		for i := range mappings {
			mappingModels[i] = models.FieldMappingModelFromDomain(&mappings[i])
		}
		return tx.Create(mappingModels).Error
	})
}
