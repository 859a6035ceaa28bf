package ingest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImportBatch(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := NewImportBatch("IMP-20240315-000001", "March purchases", BatchKindPurchase, "playstation", "Sheet1")
		require.NoError(t, err)
		assert.Equal(t, "IMP-20240315-000001", b.Code)
		assert.Equal(t, BatchKindPurchase, b.Kind)
		assert.Equal(t, 0, b.TotalRows)
		assert.Equal(t, 1, b.Version)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := NewImportBatch("", "name", BatchKindSale, "", "")
		assert.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewImportBatch("IMP-20240315-000001", "  ", BatchKindSale, "", "")
		assert.Error(t, err)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := NewImportBatch("IMP-20240315-000001", "name", BatchKind("refund"), "", "")
		assert.Error(t, err)
	})
}

func TestBatchKind_Processable(t *testing.T) {
	assert.True(t, BatchKindPurchase.Processable())
	assert.True(t, BatchKindSale.Processable())
	assert.True(t, BatchKindBonus.Processable())
	assert.False(t, BatchKindOther.Processable())
}

func TestImportBatch_RecordRun(t *testing.T) {
	b, err := NewImportBatch("IMP-20240315-000002", "sales", BatchKindSale, "", "")
	require.NoError(t, err)
	b.RecordRows(10)
	assert.False(t, b.FullyProcessed())

	b.RecordRun(7, 3)
	assert.Equal(t, 7, b.ProcessedRows)
	assert.Equal(t, 3, b.ErrorRows)
	assert.False(t, b.FullyProcessed())

	b.RecordRun(10, 0)
	assert.True(t, b.FullyProcessed())
}

func TestRawRow_Marking(t *testing.T) {
	row := NewRawRow(uuid.New(), 1, map[string]string{"Label": "acct-1"})
	assert.False(t, row.Processed)

	row.MarkFailed("required field 'label' is empty")
	assert.False(t, row.Processed)
	assert.NotEmpty(t, row.Error)

	row.MarkProcessed()
	assert.True(t, row.Processed)
	assert.Empty(t, row.Error)
}
