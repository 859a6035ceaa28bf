package models

import (
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/google/uuid"
)

// ImportBatchModel is the persistence model for the ImportBatch aggregate.
type ImportBatchModel struct {
	AggregateModel
	Code          string           `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Kind          ingest.BatchKind `gorm:"type:varchar(16);not null"`
	Platform      string           `gorm:"type:varchar(64)"`
	SheetName     string           `gorm:"type:varchar(128)"`
	TotalRows     int              `gorm:"not null;default:0"`
	ProcessedRows int              `gorm:"not null;default:0"`
	ErrorRows     int              `gorm:"not null;default:0"`
}

func (ImportBatchModel) TableName() string {
	return "import_batches"
}

func (m *ImportBatchModel) ToDomain() *ingest.ImportBatch {
	return &ingest.ImportBatch{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Name:              m.Name,
		Kind:              m.Kind,
		Platform:          m.Platform,
		SheetName:         m.SheetName,
		TotalRows:         m.TotalRows,
		ProcessedRows:     m.ProcessedRows,
		ErrorRows:         m.ErrorRows,
	}
}

func ImportBatchModelFromDomain(b *ingest.ImportBatch) *ImportBatchModel {
	m := &ImportBatchModel{
		Code:          b.Code,
		Name:          b.Name,
		Kind:          b.Kind,
		Platform:      b.Platform,
		SheetName:     b.SheetName,
		TotalRows:     b.TotalRows,
		ProcessedRows: b.ProcessedRows,
		ErrorRows:     b.ErrorRows,
	}
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	return m
}

// RawRowModel is the persistence model for one imported sheet row. The cell
// data is stored as JSON keyed by source column header.
type RawRowModel struct {
	BaseModel
	BatchID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_raw_rows_batch"`
	RowNumber int               `gorm:"not null"`
	Data      map[string]string `gorm:"serializer:json;not null"`
	Processed bool              `gorm:"not null;default:false"`
	Error     string            `gorm:"type:text"`
}

func (RawRowModel) TableName() string {
	return "raw_rows"
}

func (m *RawRowModel) ToDomain() *ingest.RawRow {
	return &ingest.RawRow{
		BaseEntity: m.BaseModel.ToDomain(),
		BatchID:    m.BatchID,
		RowNumber:  m.RowNumber,
		Data:       m.Data,
		Processed:  m.Processed,
		Error:      m.Error,
	}
}

func RawRowModelFromDomain(r *ingest.RawRow) *RawRowModel {
	m := &RawRowModel{
		BatchID:   r.BatchID,
		RowNumber: r.RowNumber,
		Data:      r.Data,
		Processed: r.Processed,
		Error:     r.Error,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// FieldMappingModel is the persistence model for one field mapping declaration.
type FieldMappingModel struct {
	AggregateModel
	BatchID      uuid.UUID           `gorm:"type:uuid;not null;index:idx_field_mappings_batch"`
	SourceColumn string              `gorm:"type:varchar(255);not null"`
	Target       mapping.TargetField `gorm:"type:varchar(32);not null"`
	Type         mapping.DataType    `gorm:"type:varchar(16);not null"`
	Required     bool                `gorm:"not null;default:false"`
	DefaultValue string              `gorm:"type:varchar(255)"`
}

func (FieldMappingModel) TableName() string {
	return "field_mappings"
}

func (m *FieldMappingModel) ToDomain() mapping.FieldMapping {
	return mapping.FieldMapping{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BatchID:           m.BatchID,
		SourceColumn:      m.SourceColumn,
		Target:            m.Target,
		Type:              m.Type,
		Required:          m.Required,
		DefaultValue:      m.DefaultValue,
	}
}

func FieldMappingModelFromDomain(fm *mapping.FieldMapping) *FieldMappingModel {
	m := &FieldMappingModel{
		BatchID:      fm.BatchID,
		SourceColumn: fm.SourceColumn,
		Target:       fm.Target,
		Type:         fm.Type,
		Required:     fm.Required,
		DefaultValue: fm.DefaultValue,
	}
	m.FromDomainAggregateRoot(fm.BaseAggregateRoot)
	return m
}

// SequenceModel backs the atomic per-scope counters used for batch codes.
type SequenceModel struct {
	Scope string `gorm:"type:varchar(64);primary_key"`
	Value int64  `gorm:"not null;default:0"`
}

func (SequenceModel) TableName() string {
	return "sequences"
}
