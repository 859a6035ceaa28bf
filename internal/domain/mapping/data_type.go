package mapping

// DataType is the declared type a mapped column's cells are coerced to.
type DataType string

const (
	DataTypeText    DataType = "text"
	DataTypeDecimal DataType = "decimal"
	DataTypeInteger DataType = "integer"
	DataTypeDate    DataType = "date"
	DataTypeBoolean DataType = "boolean"
)

// ValidDataTypes returns all valid data types
func ValidDataTypes() []DataType {
	return []DataType{
		DataTypeText,
		DataTypeDecimal,
		DataTypeInteger,
		DataTypeDate,
		DataTypeBoolean,
	}
}

// IsValid checks if the data type is valid
func (d DataType) IsValid() bool {
	switch d {
	case DataTypeText, DataTypeDecimal, DataTypeInteger, DataTypeDate, DataTypeBoolean:
		return true
	}
	return false
}
