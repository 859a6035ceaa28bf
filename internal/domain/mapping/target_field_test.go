package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetField_IsValid(t *testing.T) {
	for _, f := range ValidTargetFields() {
		assert.True(t, f.IsValid(), string(f))
	}
	assert.False(t, TargetField("").IsValid())
	assert.False(t, TargetField("unknown").IsValid())
}

func TestTargetField_DefaultDataType(t *testing.T) {
	assert.Equal(t, DataTypeDecimal, TargetPurchaseQuantity.DefaultDataType())
	assert.Equal(t, DataTypeDecimal, TargetStaffProfit.DefaultDataType())
	assert.Equal(t, DataTypeDate, TargetPurchaseDate.DefaultDataType())
	assert.Equal(t, DataTypeDate, TargetSaleDate.DefaultDataType())
	assert.Equal(t, DataTypeText, TargetLabel.DefaultDataType())
	assert.Equal(t, DataTypeText, TargetIgnore.DefaultDataType())
}

func TestDataType_IsValid(t *testing.T) {
	for _, d := range ValidDataTypes() {
		assert.True(t, d.IsValid(), string(d))
	}
	assert.False(t, DataType("float").IsValid())
}
