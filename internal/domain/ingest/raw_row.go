package ingest

import (
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// RawRow is one spreadsheet row as imported: the cell values keyed by source
// column header, untouched by coercion. Processing flips Processed exactly
// once; rows that fail keep their error text and stay unprocessed so a rerun
// picks them up again.
type RawRow struct {
	shared.BaseEntity
	BatchID   uuid.UUID         `json:"batch_id"`
	RowNumber int               `json:"row_number"`
	Data      map[string]string `json:"data"`
	Processed bool              `json:"processed"`
	Error     string            `json:"error,omitempty"`
}

// NewRawRow stores one row of an imported sheet. RowNumber is 1-based and
// counts data rows, not the header.
func NewRawRow(batchID uuid.UUID, rowNumber int, data map[string]string) *RawRow {
	return &RawRow{
		BaseEntity: shared.NewBaseEntity(),
		BatchID:    batchID,
		RowNumber:  rowNumber,
		Data:       data,
		Processed:  false,
	}
}

// MarkProcessed records a successful conversion to ledger events and clears
// any error from an earlier failed run.
func (r *RawRow) MarkProcessed() {
	r.Processed = true
	r.Error = ""
	r.Touch()
}

// MarkFailed records why this row could not be processed. The row stays
// unprocessed and eligible for the next run.
func (r *RawRow) MarkFailed(reason string) {
	r.Processed = false
	r.Error = reason
	r.Touch()
}
