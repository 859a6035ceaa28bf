package ledger

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountRepository persists labeled accounts. Labels are unique.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByLabel(ctx context.Context, label string) (*Account, error)
	FindAll(ctx context.Context) ([]*Account, error)
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	List(ctx context.Context, filter shared.Filter) (*shared.Paginated[Account], error)
}

// PurchaseLotRepository persists gold purchase events.
type PurchaseLotRepository interface {
	Save(ctx context.Context, lot *PurchaseLot) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*PurchaseLot, error)
	FindAll(ctx context.Context) ([]*PurchaseLot, error)
	DeleteByBatch(ctx context.Context, batchID uuid.UUID) error
}

// BonusRepository persists silver bonus grants.
type BonusRepository interface {
	Save(ctx context.Context, grant *SilverBonusGrant) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*SilverBonusGrant, error)
	FindAll(ctx context.Context) ([]*SilverBonusGrant, error)
	DeleteByBatch(ctx context.Context, batchID uuid.UUID) error
}

// SaleRepository persists sale events.
type SaleRepository interface {
	Save(ctx context.Context, sale *Sale) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*Sale, error)
	FindAll(ctx context.Context) ([]*Sale, error)
	DeleteByBatch(ctx context.Context, batchID uuid.UUID) error
}

// DiscrepancyRepository persists the latest discrepancy check snapshot.
type DiscrepancyRepository interface {
	// ReplaceAll drops the previous snapshot and stores the new one atomically
	ReplaceAll(ctx context.Context, discrepancies []*Discrepancy) error
	FindAll(ctx context.Context) ([]*Discrepancy, error)
	FindFlagged(ctx context.Context) ([]*Discrepancy, error)
}
