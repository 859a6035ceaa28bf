package dto

import (
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// AccountResponse is the API view of a labeled account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Email     string    `json:"email,omitempty"`
	Supplier  string    `json:"supplier,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccountResponse converts an account to its API view
func NewAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		Label:     a.Label,
		Email:     a.Email,
		Supplier:  a.Supplier,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NewAccountListResponse converts a page of accounts
func NewAccountListResponse(accounts []ledger.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = NewAccountResponse(&accounts[i])
	}
	return out
}

// SummaryResponse is the API view of one label's computed position.
type SummaryResponse struct {
	Label    string `json:"label"`
	Email    string `json:"email,omitempty"`
	Supplier string `json:"supplier,omitempty"`
	Status   string `json:"status"`

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

	AverageRate      decimal.Decimal `json:"average_rate"`
	GoldProfit       decimal.Decimal `json:"gold_profit"`
	SilverProfit     decimal.Decimal `json:"silver_profit"`
	CalculatedProfit decimal.Decimal `json:"calculated_profit"`
	StaffProfit      decimal.Decimal `json:"staff_profit"`
	HasStaffProfit   bool            `json:"has_staff_profit"`

	GoldOverSold   bool `json:"gold_over_sold"`
	SilverOverSold bool `json:"silver_over_sold"`
}

// NewSummaryResponse converts a label summary to its API view
func NewSummaryResponse(s *ledger.LabelSummary) SummaryResponse {
	return SummaryResponse{
		Label:            s.Label,
		Email:            s.Email,
		Supplier:         s.Supplier,
		Status:           string(s.Status),
		GoldPurchased:    s.GoldPurchased,
		GoldSold:         s.GoldSold,
		GoldRemaining:    s.GoldRemaining,
		SilverGranted:    s.SilverGranted,
		SilverSold:       s.SilverSold,
		SilverRemaining:  s.SilverRemaining,
		TotalCost:        s.TotalCost,
		GoldRevenue:      s.GoldRevenue,
		SilverRevenue:    s.SilverRevenue,
		TotalRevenue:     s.TotalRevenue,
		AverageRate:      s.AverageRate,
		GoldProfit:       s.GoldProfit,
		SilverProfit:     s.SilverProfit,
		CalculatedProfit: s.CalculatedProfit,
		StaffProfit:      s.StaffProfit,
		HasStaffProfit:   s.HasStaffProfit,
		GoldOverSold:     s.GoldOverSold,
		SilverOverSold:   s.SilverOverSold,
	}
}

// NewSummaryListResponse converts a list of summaries
func NewSummaryListResponse(summaries []*ledger.LabelSummary) []SummaryResponse {
	out := make([]SummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = NewSummaryResponse(s)
	}
	return out
}

// DiscrepancyResponse is the API view of one staff profit discrepancy.
type DiscrepancyResponse struct {
	Label            string          `json:"label"`
	CalculatedProfit decimal.Decimal `json:"calculated_profit"`
	StaffProfit      decimal.Decimal `json:"staff_profit"`
	Difference       decimal.Decimal `json:"difference"`
	Ratio            decimal.Decimal `json:"ratio"`
	Flagged          bool            `json:"flagged"`
	CheckedAt        time.Time       `json:"checked_at"`
}

// NewDiscrepancyListResponse converts a discrepancy snapshot
func NewDiscrepancyListResponse(discrepancies []*ledger.Discrepancy) []DiscrepancyResponse {
	out := make([]DiscrepancyResponse, len(discrepancies))
	for i, d := range discrepancies {
		out[i] = DiscrepancyResponse{
			Label:            d.Label,
			CalculatedProfit: d.CalculatedProfit,
			StaffProfit:      d.StaffProfit,
			Difference:       d.Difference,
			Ratio:            d.Ratio,
			Flagged:          d.Flagged,
			CheckedAt:        d.CheckedAt,
		}
	}
	return out
}
