package ingest

import (
	"fmt"
	"strings"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
)

// BatchKind classifies what the rows of a batch represent and therefore which
// target fields row processing will demand from the mapping set.
type BatchKind string

const (
	// BatchKindPurchase rows create accounts and gold purchase lots
	BatchKindPurchase BatchKind = "purchase"
	// BatchKindSale rows record gold or silver sales against accounts
	BatchKindSale BatchKind = "sale"
	// BatchKindBonus rows grant zero-cost silver to accounts
	BatchKindBonus BatchKind = "bonus"
	// BatchKindOther batches hold rows for inspection only and cannot be processed
	BatchKindOther BatchKind = "other"
)

func ValidBatchKinds() []BatchKind {
	return []BatchKind{BatchKindPurchase, BatchKindSale, BatchKindBonus, BatchKindOther}
}

func (k BatchKind) IsValid() bool {
	switch k {
	case BatchKindPurchase, BatchKindSale, BatchKindBonus, BatchKindOther:
		return true
	}
	return false
}

// Processable reports whether rows of this kind can be turned into ledger events.
func (k BatchKind) Processable() bool {
	return k == BatchKindPurchase || k == BatchKindSale || k == BatchKindBonus
}

// ImportBatch is one imported spreadsheet: its identity, provenance and the
// running totals of its processing runs. Rows live separately as RawRow.
type ImportBatch struct {
	shared.BaseAggregateRoot
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Kind          BatchKind `json:"kind"`
	Platform      string    `json:"platform"`
	SheetName     string    `json:"sheet_name"`
	TotalRows     int       `json:"total_rows"`
	ProcessedRows int       `json:"processed_rows"`
	ErrorRows     int       `json:"error_rows"`
}

// NewImportBatch registers a batch. The code comes from the import sequence
// generator and identifies the batch to operators.
func NewImportBatch(code, name string, kind BatchKind, platform, sheetName string) (*ImportBatch, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_CODE", "Batch code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_NAME", "Batch name cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_BATCH_KIND", fmt.Sprintf("Invalid batch kind: %s", kind))
	}
	return &ImportBatch{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Kind:              kind,
		Platform:          strings.TrimSpace(platform),
		SheetName:         strings.TrimSpace(sheetName),
	}, nil
}

// RecordRows sets the row count after the sheet has been read and stored.
func (b *ImportBatch) RecordRows(total int) {
	b.TotalRows = total
	b.Touch()
}

// RecordRun updates the running totals after a processing run. Processed and
// failed counts are absolute, not incremental: a rerun that clears old errors
// overwrites the previous totals.
func (b *ImportBatch) RecordRun(processed, failed int) {
	b.ProcessedRows = processed
	b.ErrorRows = failed
	b.Touch()
}

// FullyProcessed reports whether every stored row has been turned into ledger events.
func (b *ImportBatch) FullyProcessed() bool {
	return b.TotalRows > 0 && b.ProcessedRows == b.TotalRows
}
