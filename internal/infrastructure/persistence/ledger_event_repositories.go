package persistence

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The three ledger event repositories are append-mostly: events are written
// during processing runs, read in bulk for summaries, and deleted only when a
// batch is reverted.

// GormPurchaseLotRepository implements ledger.PurchaseLotRepository using GORM
type GormPurchaseLotRepository struct {
	db *gorm.DB
}

func NewGormPurchaseLotRepository(db *gorm.DB) *GormPurchaseLotRepository {
	return &GormPurchaseLotRepository{db: db}
}

func (r *GormPurchaseLotRepository) Save(ctx context.Context, lot *ledger.PurchaseLot) error {
	return r.db.WithContext(ctx).Create(models.PurchaseLotModelFromDomain(lot)).Error
}

func (r *GormPurchaseLotRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.PurchaseLot, error) {
	var lotModels []models.PurchaseLotModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&lotModels).Error; err != nil {
		return nil, err
	}
	lots := make([]*ledger.PurchaseLot, len(lotModels))
	for i := range lotModels {
		lots[i] = lotModels[i].ToDomain()
	}
	return lots, nil
}

func (r *GormPurchaseLotRepository) FindAll(ctx context.Context) ([]*ledger.PurchaseLot, error) {
	var lotModels []models.PurchaseLotModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&lotModels).Error; err != nil {
		return nil, err
	}
	lots := make([]*ledger.PurchaseLot, len(lotModels))
	for i := range lotModels {
		lots[i] = lotModels[i].ToDomain()
	}
	return lots, nil
}

func (r *GormPurchaseLotRepository) DeleteByBatch(ctx context.Context, batchID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PurchaseLotModel{}, "batch_id = ?", batchID).Error
}

// GormBonusRepository implements ledger.BonusRepository using GORM
type GormBonusRepository struct {
	db *gorm.DB
}

func NewGormBonusRepository(db *gorm.DB) *GormBonusRepository {
	return &GormBonusRepository{db: db}
}

func (r *GormBonusRepository) Save(ctx context.Context, grant *ledger.SilverBonusGrant) error {
	return r.db.WithContext(ctx).Create(models.SilverBonusGrantModelFromDomain(grant)).Error
}

func (r *GormBonusRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.SilverBonusGrant, error) {
	var grantModels []models.SilverBonusGrantModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&grantModels).Error; err != nil {
		return nil, err
	}
	grants := make([]*ledger.SilverBonusGrant, len(grantModels))
	for i := range grantModels {
		grants[i] = grantModels[i].ToDomain()
	}
	return grants, nil
}

func (r *GormBonusRepository) FindAll(ctx context.Context) ([]*ledger.SilverBonusGrant, error) {
	var grantModels []models.SilverBonusGrantModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&grantModels).Error; err != nil {
		return nil, err
	}
	grants := make([]*ledger.SilverBonusGrant, len(grantModels))
	for i := range grantModels {
		grants[i] = grantModels[i].ToDomain()
	}
	return grants, nil
}

func (r *GormBonusRepository) DeleteByBatch(ctx context.Context, batchID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.SilverBonusGrantModel{}, "batch_id = ?", batchID).Error
}

// GormSaleRepository implements ledger.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) Save(ctx context.Context, sale *ledger.Sale) error {
	return r.db.WithContext(ctx).Create(models.SaleModelFromDomain(sale)).Error
}

func (r *GormSaleRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Sale, error) {
	var saleModels []models.SaleModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&saleModels).Error; err != nil {
		return nil, err
	}
	sales := make([]*ledger.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToDomain()
	}
	return sales, nil
}

func (r *GormSaleRepository) FindAll(ctx context.Context) ([]*ledger.Sale, error) {
	var saleModels []models.SaleModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&saleModels).Error; err != nil {
		return nil, err
	}
	sales := make([]*ledger.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToDomain()
	}
	return sales, nil
}

func (r *GormSaleRepository) DeleteByBatch(ctx context.Context, batchID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.SaleModel{}, "batch_id = ?", batchID).Error
}
