package mapping

// TargetField identifies the semantic meaning of a mapped spreadsheet column.
// The set is closed: an import can only feed fields the ledger understands.
type TargetField string

const (
	TargetLabel            TargetField = "label"
	TargetEmail            TargetField = "email"
	TargetSupplier         TargetField = "supplier"
	TargetPurchaseQuantity TargetField = "purchase_quantity"
	TargetPurchaseRate     TargetField = "purchase_rate"
	TargetPurchaseCost     TargetField = "purchase_cost"
	TargetPurchaseDate     TargetField = "purchase_date"
	TargetSilverBonus      TargetField = "silver_bonus"
	TargetSaleQuantity     TargetField = "sale_quantity"
	TargetSaleRate         TargetField = "sale_rate"
	TargetSaleKind         TargetField = "sale_kind"
	TargetCustomerCode     TargetField = "customer_code"
	TargetSaleDate         TargetField = "sale_date"
	TargetStaffProfit      TargetField = "staff_profit"
	TargetNote             TargetField = "note"
	TargetStatus           TargetField = "status"
	TargetIgnore           TargetField = "ignore"
)

// ValidTargetFields returns all valid target fields
func ValidTargetFields() []TargetField {
	return []TargetField{
		TargetLabel,
		TargetEmail,
		TargetSupplier,
		TargetPurchaseQuantity,
		TargetPurchaseRate,
		TargetPurchaseCost,
		TargetPurchaseDate,
		TargetSilverBonus,
		TargetSaleQuantity,
		TargetSaleRate,
		TargetSaleKind,
		TargetCustomerCode,
		TargetSaleDate,
		TargetStaffProfit,
		TargetNote,
		TargetStatus,
		TargetIgnore,
	}
}

// IsValid checks if the target field is valid
func (t TargetField) IsValid() bool {
	for _, valid := range ValidTargetFields() {
		if t == valid {
			return true
		}
	}
	return false
}

// DefaultDataType returns the data type a target field normally carries.
// Used by the mapping UI to pre-fill declarations; the user can override it.
func (t TargetField) DefaultDataType() DataType {
	switch t {
	case TargetPurchaseQuantity, TargetPurchaseRate, TargetPurchaseCost,
		TargetSilverBonus, TargetSaleQuantity, TargetSaleRate, TargetStaffProfit:
		return DataTypeDecimal
	case TargetPurchaseDate, TargetSaleDate:
		return DataTypeDate
	default:
		return DataTypeText
	}
}
