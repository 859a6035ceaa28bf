package ledger

import (
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DiscrepancyThreshold is the relative difference between staff-reported and
// calculated profit above which a label is flagged for review: one percent.
var DiscrepancyThreshold = decimal.NewFromFloat(0.01)

// Discrepancy is one label's staff-reported versus calculated profit at the
// time of a check run. Rows are a snapshot: each run replaces the previous
// set wholesale.
type Discrepancy struct {
	shared.BaseEntity
	Label            string          `json:"label"`
	CalculatedProfit decimal.Decimal `json:"calculated_profit"`
	StaffProfit      decimal.Decimal `json:"staff_profit"`
	Difference       decimal.Decimal `json:"difference"`
	Ratio            decimal.Decimal `json:"ratio"`
	Flagged          bool            `json:"flagged"`
	CheckedAt        time.Time       `json:"checked_at"`
}

// CheckDiscrepancies compares staff-reported profit against calculated profit
// for every summary that has at least one staff report. Labels whose
// calculated profit is zero are skipped: the relative measure is undefined
// there and the absolute figures are already visible on the summary.
func CheckDiscrepancies(summaries []*LabelSummary, checkedAt time.Time) []*Discrepancy {
	var out []*Discrepancy
	for _, s := range summaries {
		if !s.HasStaffProfit || s.CalculatedProfit.IsZero() {
			continue
		}
		diff := s.StaffProfit.Sub(s.CalculatedProfit)
		ratio := diff.Abs().Div(s.CalculatedProfit.Abs())
		out = append(out, &Discrepancy{
			BaseEntity:       shared.NewBaseEntity(),
			Label:            s.Label,
			CalculatedProfit: s.CalculatedProfit,
			StaffProfit:      s.StaffProfit,
			Difference:       diff,
			Ratio:            ratio,
			Flagged:          ratio.GreaterThan(DiscrepancyThreshold),
			CheckedAt:        checkedAt,
		})
	}
	return out
}
