package mapping

import "fmt"

// CoercionError is returned when a cell value cannot be converted to its
// declared data type. It is row-scoped: the row fails, the batch continues.
type CoercionError struct {
	Column string
	Value  string
	Type   DataType
	Reason string
}

// Error implements the error interface
func (e *CoercionError) Error() string {
	return fmt.Sprintf("column '%s': cannot coerce %q to %s: %s", e.Column, e.Value, e.Type, e.Reason)
}

// NewCoercionError creates a new CoercionError
func NewCoercionError(column, value string, dataType DataType, reason string) *CoercionError {
	return &CoercionError{
		Column: column,
		Value:  value,
		Type:   dataType,
		Reason: reason,
	}
}

// MissingRequiredFieldError is returned when a required mapped field resolves
// to empty/null for a row. Row-scoped.
type MissingRequiredFieldError struct {
	Column string
	Target TargetField
}

// Error implements the error interface
func (e *MissingRequiredFieldError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("required field '%s' (column '%s') is empty", e.Target, e.Column)
	}
	return fmt.Sprintf("required field '%s' has no mapped column", e.Target)
}

// NewMissingRequiredFieldError creates a new MissingRequiredFieldError
func NewMissingRequiredFieldError(column string, target TargetField) *MissingRequiredFieldError {
	return &MissingRequiredFieldError{Column: column, Target: target}
}
