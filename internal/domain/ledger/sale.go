package ledger

import (
	"strings"
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleKind says which balance pool a sale draws from.
type SaleKind string

const (
	SaleKindGold   SaleKind = "gold"
	SaleKindSilver SaleKind = "silver"
)

// ParseSaleKind normalizes a raw sale kind cell. Empty input defaults to
// gold, which is what unannotated sale sheets mean.
func ParseSaleKind(raw string) (SaleKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "gold":
		return SaleKindGold, true
	case "silver":
		return SaleKindSilver, true
	}
	return "", false
}

// Sale is one disposal of balance from an account: a quantity sold at a rate,
// drawing from the gold or silver pool. StaffProfit is the profit figure the
// operator wrote on the sheet, kept nil when absent so discrepancy checking
// can tell "not reported" from "reported zero".
type Sale struct {
	shared.BaseAggregateRoot
	AccountID    uuid.UUID        `json:"account_id"`
	Label        string           `json:"label"`
	BatchID      uuid.UUID        `json:"batch_id"`
	RowNumber    int              `json:"row_number"`
	Kind         SaleKind         `json:"kind"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Rate         decimal.Decimal  `json:"rate"`
	Amount       decimal.Decimal  `json:"amount"`
	CustomerCode string           `json:"customer_code"`
	StaffProfit  *decimal.Decimal `json:"staff_profit,omitempty"`
	SoldAt       *time.Time       `json:"sold_at,omitempty"`
	Platform     string           `json:"platform"`
	SheetName    string           `json:"sheet_name"`
}

// NewSale records a sale. Amount is always quantity * rate; sheets that carry
// their own amount column are not trusted over the product.
func NewSale(account *Account, batchID uuid.UUID, rowNumber int, kind SaleKind, quantity, rate decimal.Decimal, customerCode string, staffProfit *decimal.Decimal, soldAt *time.Time, platform, sheetName string) (*Sale, error) {
	if kind != SaleKindGold && kind != SaleKindSilver {
		return nil, shared.NewDomainError("INVALID_SALE_KIND", "Sale kind must be gold or silver")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale quantity must be positive")
	}
	if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale rate cannot be negative")
	}
	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AccountID:         account.ID,
		Label:             account.Label,
		BatchID:           batchID,
		RowNumber:         rowNumber,
		Kind:              kind,
		Quantity:          quantity,
		Rate:              rate,
		Amount:            quantity.Mul(rate),
		CustomerCode:      strings.TrimSpace(customerCode),
		StaffProfit:       staffProfit,
		SoldAt:            soldAt,
		Platform:          platform,
		SheetName:         sheetName,
	}, nil
}
