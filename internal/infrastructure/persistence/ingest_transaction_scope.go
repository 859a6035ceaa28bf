package persistence

import (
	"context"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormTransactionScope implements the processing TransactionScope using GORM
// transactions. One Execute call is one database transaction; the repositories
// handed to the callback all run on it.
type GormTransactionScope struct {
	db *gorm.DB
}

func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appingest.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) BatchRepo() ingest.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

func (r *gormTransactionalRepositories) RowRepo() ingest.RowRepository {
	return NewGormRowRepository(r.tx)
}

func (r *gormTransactionalRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormTransactionalRepositories) LotRepo() ledger.PurchaseLotRepository {
	return NewGormPurchaseLotRepository(r.tx)
}

func (r *gormTransactionalRepositories) BonusRepo() ledger.BonusRepository {
	return NewGormBonusRepository(r.tx)
}

func (r *gormTransactionalRepositories) SaleRepo() ledger.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

var _ appingest.TransactionScope = (*GormTransactionScope)(nil)
var _ appingest.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
