package ingest

import (
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
)

// RegisterBatchInput describes a new batch before its rows are attached.
type RegisterBatchInput struct {
	Name      string           `json:"name"`
	Kind      ingest.BatchKind `json:"kind"`
	Platform  string           `json:"platform"`
	SheetName string           `json:"sheet_name"`
}

// MappingInput is one declared column mapping as submitted by the client.
type MappingInput struct {
	SourceColumn string              `json:"source_column"`
	Target       mapping.TargetField `json:"target"`
	Type         mapping.DataType    `json:"type"`
	Required     bool                `json:"required"`
	DefaultValue string              `json:"default_value"`
}

// RowError is one failed row of a processing run.
type RowError struct {
	RowNumber int    `json:"row_number"`
	Message   string `json:"message"`
}

// ProcessResult summarizes one processing run of a batch.
type ProcessResult struct {
	BatchCode     string     `json:"batch_code"`
	TotalRows     int        `json:"total_rows"`
	ProcessedRows int        `json:"processed_rows"`
	ErrorRows     int        `json:"error_rows"`
	Errors        []RowError `json:"errors,omitempty"`
}
