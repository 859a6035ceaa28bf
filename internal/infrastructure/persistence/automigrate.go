package persistence

import (
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all persistence models.
// Production deployments use the SQL migrations; this backs the SQLite test
// databases and development bootstrapping.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ImportBatchModel{},
		&models.RawRowModel{},
		&models.FieldMappingModel{},
		&models.SequenceModel{},
		&models.AccountModel{},
		&models.PurchaseLotModel{},
		&models.SilverBonusGrantModel{},
		&models.SaleModel{},
		&models.DiscrepancyModel{},
	)
}
