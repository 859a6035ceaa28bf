package dto

import (
	"time"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
)

// RegisterBatchRequest registers a batch together with its raw rows.
type RegisterBatchRequest struct {
	Name      string              `json:"name" binding:"required"`
	Kind      string              `json:"kind" binding:"required"`
	Platform  string              `json:"platform"`
	SheetName string              `json:"sheet_name"`
	Rows      []map[string]string `json:"rows"`
}

// MappingRequest is one column mapping in a PUT mappings body.
type MappingRequest struct {
	SourceColumn string `json:"source_column" binding:"required"`
	Target       string `json:"target" binding:"required"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"default_value"`
}

// MappingSetRequest replaces a batch's whole mapping set.
type MappingSetRequest struct {
	Mappings []MappingRequest `json:"mappings" binding:"required"`
}

// BatchResponse is the API view of an import batch.
type BatchResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	Platform      string    `json:"platform,omitempty"`
	SheetName     string    `json:"sheet_name,omitempty"`
	TotalRows     int       `json:"total_rows"`
	ProcessedRows int       `json:"processed_rows"`
	ErrorRows     int       `json:"error_rows"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBatchResponse converts a batch to its API view
func NewBatchResponse(b *ingest.ImportBatch) BatchResponse {
	return BatchResponse{
		ID:            b.ID.String(),
		Code:          b.Code,
		Name:          b.Name,
		Kind:          string(b.Kind),
		Platform:      b.Platform,
		SheetName:     b.SheetName,
		TotalRows:     b.TotalRows,
		ProcessedRows: b.ProcessedRows,
		ErrorRows:     b.ErrorRows,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// NewBatchListResponse converts a page of batches
func NewBatchListResponse(batches []ingest.ImportBatch) []BatchResponse {
	out := make([]BatchResponse, len(batches))
	for i := range batches {
		out[i] = NewBatchResponse(&batches[i])
	}
	return out
}

// RowResponse is the API view of a stored raw row.
type RowResponse struct {
	ID        string            `json:"id"`
	RowNumber int               `json:"row_number"`
	Data      map[string]string `json:"data"`
	Processed bool              `json:"processed"`
	Error     string            `json:"error,omitempty"`
}

// NewRowResponse converts a raw row to its API view
func NewRowResponse(r *ingest.RawRow) RowResponse {
	return RowResponse{
		ID:        r.ID.String(),
		RowNumber: r.RowNumber,
		Data:      r.Data,
		Processed: r.Processed,
		Error:     r.Error,
	}
}

// MappingResponse is the API view of one field mapping.
type MappingResponse struct {
	SourceColumn string `json:"source_column"`
	Target       string `json:"target"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"default_value,omitempty"`
}

// NewMappingSetResponse converts a mapping set to its API view
func NewMappingSetResponse(set mapping.Set) []MappingResponse {
	out := make([]MappingResponse, len(set))
	for i, m := range set {
		out[i] = MappingResponse{
			SourceColumn: m.SourceColumn,
			Target:       string(m.Target),
			Type:         string(m.Type),
			Required:     m.Required,
			DefaultValue: m.DefaultValue,
		}
	}
	return out
}

// ProcessResponse is the API view of one processing run.
type ProcessResponse struct {
	BatchCode     string             `json:"batch_code"`
	TotalRows     int                `json:"total"`
	ProcessedRows int                `json:"processed"`
	ErrorRows     int                `json:"errors"`
	ErrorDetails  []RowErrorResponse `json:"error_details,omitempty"`
}

// RowErrorResponse is one failed row in a process response.
type RowErrorResponse struct {
	RowNumber int    `json:"row_number"`
	Message   string `json:"message"`
}

// NewProcessResponse converts a process result to its API view
func NewProcessResponse(result *appingest.ProcessResult) ProcessResponse {
	details := make([]RowErrorResponse, len(result.Errors))
	for i, e := range result.Errors {
		details[i] = RowErrorResponse{RowNumber: e.RowNumber, Message: e.Message}
	}
	return ProcessResponse{
		BatchCode:     result.BatchCode,
		TotalRows:     result.TotalRows,
		ProcessedRows: result.ProcessedRows,
		ErrorRows:     result.ErrorRows,
		ErrorDetails:  details,
	}
}
