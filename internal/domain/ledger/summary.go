package ledger

import (
	"github.com/shopspring/decimal"
)

// LabelSummary is the computed ledger position of one account: inventory of
// both balance pools, money in and out, and profit. It is derived on demand
// from the stored events and never persisted.
type LabelSummary struct {
	Label    string        `json:"label"`
	Email    string        `json:"email"`
	Supplier string        `json:"supplier"`
	Status   AccountStatus `json:"status"`

	GoldPurchased   decimal.Decimal `json:"gold_purchased"`
	GoldSold        decimal.Decimal `json:"gold_sold"`
	GoldRemaining   decimal.Decimal `json:"gold_remaining"`
	SilverGranted   decimal.Decimal `json:"silver_granted"`
	SilverSold      decimal.Decimal `json:"silver_sold"`
	SilverRemaining decimal.Decimal `json:"silver_remaining"`

	TotalCost     decimal.Decimal `json:"total_cost"`
	GoldRevenue   decimal.Decimal `json:"gold_revenue"`
	SilverRevenue decimal.Decimal `json:"silver_revenue"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`

	// AverageRate is TotalCost / GoldPurchased, zero when nothing was purchased
	AverageRate decimal.Decimal `json:"average_rate"`

	// Silver inventory has no cost basis, so SilverProfit is its full
	// revenue and GoldProfit absorbs the entire purchase cost.
	GoldProfit       decimal.Decimal `json:"gold_profit"`
	SilverProfit     decimal.Decimal `json:"silver_profit"`
	CalculatedProfit decimal.Decimal `json:"calculated_profit"`

	// StaffProfit is the sum of the profit figures staff reported on sale
	// rows; HasStaffProfit distinguishes no reports from reports summing to zero
	StaffProfit    decimal.Decimal `json:"staff_profit"`
	HasStaffProfit bool            `json:"has_staff_profit"`

	// Over-sold flags mark labels whose sales exceed the recorded inventory.
	// The remaining figures go negative rather than clamping so the size of
	// the discrepancy stays visible.
	GoldOverSold   bool `json:"gold_over_sold"`
	SilverOverSold bool `json:"silver_over_sold"`
}

// Summarize computes the ledger position of one account from its events.
func Summarize(account *Account, lots []*PurchaseLot, bonuses []*SilverBonusGrant, sales []*Sale) *LabelSummary {
	s := &LabelSummary{
		Label:    account.Label,
		Email:    account.Email,
		Supplier: account.Supplier,
		Status:   account.Status,
	}

	for _, lot := range lots {
		s.GoldPurchased = s.GoldPurchased.Add(lot.Quantity)
		s.TotalCost = s.TotalCost.Add(lot.Cost)
	}
	for _, b := range bonuses {
		s.SilverGranted = s.SilverGranted.Add(b.Quantity)
	}
	for _, sale := range sales {
		switch sale.Kind {
		case SaleKindSilver:
			s.SilverSold = s.SilverSold.Add(sale.Quantity)
			s.SilverRevenue = s.SilverRevenue.Add(sale.Amount)
		default:
			s.GoldSold = s.GoldSold.Add(sale.Quantity)
			s.GoldRevenue = s.GoldRevenue.Add(sale.Amount)
		}
		if sale.StaffProfit != nil {
			s.StaffProfit = s.StaffProfit.Add(*sale.StaffProfit)
			s.HasStaffProfit = true
		}
	}

	s.GoldRemaining = s.GoldPurchased.Sub(s.GoldSold)
	s.SilverRemaining = s.SilverGranted.Sub(s.SilverSold)
	s.GoldOverSold = s.GoldRemaining.IsNegative()
	s.SilverOverSold = s.SilverRemaining.IsNegative()

	s.TotalRevenue = s.GoldRevenue.Add(s.SilverRevenue)
	s.GoldProfit = s.GoldRevenue.Sub(s.TotalCost)
	s.SilverProfit = s.SilverRevenue
	s.CalculatedProfit = s.GoldProfit.Add(s.SilverProfit)
	if !s.GoldPurchased.IsZero() {
		s.AverageRate = s.TotalCost.Div(s.GoldPurchased)
	}

	return s
}
