package mapping

import (
	"fmt"
	"strings"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// FieldMapping declares that one source spreadsheet column supplies one
// semantic target field for a batch, with the expected data type, whether the
// field is required, and the default used when an optional cell is empty.
type FieldMapping struct {
	shared.BaseAggregateRoot
	BatchID      uuid.UUID   `json:"batch_id"`
	SourceColumn string      `json:"source_column"`
	Target       TargetField `json:"target"`
	Type         DataType    `json:"type"`
	Required     bool        `json:"required"`
	DefaultValue string      `json:"default_value"`
}

// NewFieldMapping creates a new field mapping declaration
func NewFieldMapping(batchID uuid.UUID, sourceColumn string, target TargetField, dataType DataType, required bool, defaultValue string) (*FieldMapping, error) {
	sourceColumn = strings.TrimSpace(sourceColumn)
	if sourceColumn == "" {
		return nil, shared.NewDomainError("INVALID_SOURCE_COLUMN", "Source column cannot be empty")
	}
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_TARGET_FIELD", fmt.Sprintf("Invalid target field: %s", target))
	}
	if !dataType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DATA_TYPE", fmt.Sprintf("Invalid data type: %s", dataType))
	}
	return &FieldMapping{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BatchID:           batchID,
		SourceColumn:      sourceColumn,
		Target:            target,
		Type:              dataType,
		Required:          required,
		DefaultValue:      defaultValue,
	}, nil
}

// Set is the complete, ordered mapping declaration of one batch.
type Set []FieldMapping

// Validate checks the set-level invariants: a batch needs at least one
// mapping, and at most one mapping per source column.
func (s Set) Validate() error {
	if len(s) == 0 {
		return shared.NewDomainError("NO_MAPPING_DEFINED", "Batch has no field mappings")
	}
	seen := make(map[string]bool, len(s))
	for _, m := range s {
		key := strings.ToLower(m.SourceColumn)
		if seen[key] {
			return shared.NewDomainError("DUPLICATE_SOURCE_COLUMN",
				fmt.Sprintf("Source column '%s' is mapped more than once", m.SourceColumn))
		}
		seen[key] = true
	}
	return nil
}

// ByTarget returns the mapping declared for a target field, if any.
func (s Set) ByTarget(target TargetField) (*FieldMapping, bool) {
	for i := range s {
		if s[i].Target == target {
			return &s[i], true
		}
	}
	return nil, false
}

// Extract looks up the mapping for a target field, fetches the cell from the
// raw row and coerces it. A target with no mapping yields Null without error;
// most target fields are optional for any given batch kind.
func (s Set) Extract(row map[string]string, target TargetField) (RawValue, error) {
	m, ok := s.ByTarget(target)
	if !ok {
		return Null(), nil
	}
	return Coerce(row[m.SourceColumn], m.Type, m.DefaultValue, m.Required, m.SourceColumn)
}

// ExtractRequired behaves like Extract but treats an unmapped or null result
// as MissingRequiredFieldError, regardless of the mapping's own required flag.
// Row processing uses it for the fields a batch kind cannot do without.
func (s Set) ExtractRequired(row map[string]string, target TargetField) (RawValue, error) {
	m, ok := s.ByTarget(target)
	if !ok {
		return Null(), NewMissingRequiredFieldError("", target)
	}
	v, err := Coerce(row[m.SourceColumn], m.Type, m.DefaultValue, true, m.SourceColumn)
	if err != nil {
		if missing, isMissing := err.(*MissingRequiredFieldError); isMissing {
			missing.Target = target
		}
		return Null(), err
	}
	return v, nil
}
