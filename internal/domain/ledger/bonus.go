package ledger

import (
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SilverBonusGrant is zero-cost balance credited to an account, typically a
// platform promotion. Silver carries no acquisition cost, so its sale revenue
// is pure profit.
type SilverBonusGrant struct {
	shared.BaseAggregateRoot
	AccountID uuid.UUID       `json:"account_id"`
	Label     string          `json:"label"`
	BatchID   uuid.UUID       `json:"batch_id"`
	RowNumber int             `json:"row_number"`
	Quantity  decimal.Decimal `json:"quantity"`
	GrantedAt *time.Time      `json:"granted_at,omitempty"`
	Platform  string          `json:"platform"`
	SheetName string          `json:"sheet_name"`
}

// NewSilverBonusGrant records a silver grant. Quantity must be positive; a
// zero grant is a row error, not a ledger event.
func NewSilverBonusGrant(account *Account, batchID uuid.UUID, rowNumber int, quantity decimal.Decimal, grantedAt *time.Time, platform, sheetName string) (*SilverBonusGrant, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Bonus quantity must be positive")
	}
	return &SilverBonusGrant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AccountID:         account.ID,
		Label:             account.Label,
		BatchID:           batchID,
		RowNumber:         rowNumber,
		Quantity:          quantity,
		GrantedAt:         grantedAt,
		Platform:          platform,
		SheetName:         sheetName,
	}, nil
}
