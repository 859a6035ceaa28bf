package persistence

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDiscrepancyRepository implements ledger.DiscrepancyRepository using GORM
type GormDiscrepancyRepository struct {
	db *gorm.DB
}

func NewGormDiscrepancyRepository(db *gorm.DB) *GormDiscrepancyRepository {
	return &GormDiscrepancyRepository{db: db}
}

// ReplaceAll swaps the whole snapshot in one transaction.
func (r *GormDiscrepancyRepository) ReplaceAll(ctx context.Context, discrepancies []*ledger.Discrepancy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.DiscrepancyModel{}).Error; err != nil {
			return err
		}
		if len(discrepancies) == 0 {
			return nil
		}
		discrepancyModels := make([]*models.DiscrepancyModel, len(discrepancies))
		for i, d := range discrepancies {
			discrepancyModels[i] = models.DiscrepancyModelFromDomain(d)
		}
		return tx.CreateInBatches(discrepancyModels, 500).Error
	})
}

func (r *GormDiscrepancyRepository) FindAll(ctx context.Context) ([]*ledger.Discrepancy, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r *GormDiscrepancyRepository) FindFlagged(ctx context.Context) ([]*ledger.Discrepancy, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("flagged = ?", true))
}

func (r *GormDiscrepancyRepository) find(_ context.Context, query *gorm.DB) ([]*ledger.Discrepancy, error) {
	var discrepancyModels []models.DiscrepancyModel
	if err := query.Order("label ASC").Find(&discrepancyModels).Error; err != nil {
		return nil, err
	}
	out := make([]*ledger.Discrepancy, len(discrepancyModels))
	for i := range discrepancyModels {
		out[i] = discrepancyModels[i].ToDomain()
	}
	return out, nil
}
