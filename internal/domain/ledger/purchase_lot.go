package ledger

import (
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLot is one gold acquisition for an account: a quantity of balance
// bought at a cost. Quantity, rate and cost satisfy cost = quantity * rate;
// when the source row supplies only two of the three, the third is derived.
type PurchaseLot struct {
	shared.BaseAggregateRoot
	AccountID   uuid.UUID       `json:"account_id"`
	Label       string          `json:"label"`
	BatchID     uuid.UUID       `json:"batch_id"`
	RowNumber   int             `json:"row_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Cost        decimal.Decimal `json:"cost"`
	PurchasedAt *time.Time      `json:"purchased_at,omitempty"`
	Platform    string          `json:"platform"`
	SheetName   string          `json:"sheet_name"`
}

// NewPurchaseLot records a gold purchase. Exactly one of rate and cost may be
// omitted (zero): cost derives as quantity * rate, rate derives as
// cost / quantity. When the row supplies both they are trusted as given even
// if inconsistent, so the imported figures stay auditable. A zero quantity
// with a supplied cost keeps rate at zero rather than dividing by zero.
func NewPurchaseLot(account *Account, batchID uuid.UUID, rowNumber int, quantity, rate, cost decimal.Decimal, purchasedAt *time.Time, platform, sheetName string) (*PurchaseLot, error) {
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Purchase quantity cannot be negative")
	}
	if rate.IsNegative() || cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Purchase rate and cost cannot be negative")
	}

	switch {
	case cost.IsZero() && !rate.IsZero():
		cost = quantity.Mul(rate)
	case rate.IsZero() && !cost.IsZero():
		if !quantity.IsZero() {
			rate = cost.Div(quantity)
		}
	}

	return &PurchaseLot{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AccountID:         account.ID,
		Label:             account.Label,
		BatchID:           batchID,
		RowNumber:         rowNumber,
		Quantity:          quantity,
		Rate:              rate,
		Cost:              cost,
		PurchasedAt:       purchasedAt,
		Platform:          platform,
		SheetName:         sheetName,
	}, nil
}
