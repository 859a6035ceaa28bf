package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBatchService_Register(t *testing.T) {
	p := newPipeline()
	svc := NewBatchService(p.batchRepo, p.rowRepo, p.seqRepo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterBatchInput{Name: "purchases", Kind: ingest.BatchKindPurchase})
	require.NoError(t, err)
	assert.Equal(t, "IMP-20240315-000001", first.Code)

	second, err := svc.Register(ctx, RegisterBatchInput{Name: "sales", Kind: ingest.BatchKindSale})
	require.NoError(t, err)
	assert.Equal(t, "IMP-20240315-000002", second.Code)

	t.Run("invalid kind", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterBatchInput{Name: "x", Kind: ingest.BatchKind("refund")})
		assert.Error(t, err)
	})
}

func TestBatchService_AttachRows(t *testing.T) {
	p := newPipeline()
	svc := NewBatchService(p.batchRepo, p.rowRepo, p.seqRepo, zap.NewNop())
	ctx := context.Background()

	batch, err := svc.Register(ctx, RegisterBatchInput{Name: "purchases", Kind: ingest.BatchKindPurchase})
	require.NoError(t, err)

	rows := []map[string]string{
		{"Label": "acct-1", "Qty": "10"},
		{"Label": "acct-2", "Qty": "20"},
	}
	updated, err := svc.AttachRows(ctx, batch.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalRows)

	stored, err := svc.GetRows(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].RowNumber)
	assert.Equal(t, "acct-2", stored[1].Data["Label"])

	t.Run("second attach rejected", func(t *testing.T) {
		_, err := svc.AttachRows(ctx, batch.ID, rows)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "ROWS_ALREADY_ATTACHED", derr.Code)
	})

	t.Run("empty sheet rejected", func(t *testing.T) {
		other, err := svc.Register(ctx, RegisterBatchInput{Name: "empty", Kind: ingest.BatchKindSale})
		require.NoError(t, err)
		_, err = svc.AttachRows(ctx, other.ID, nil)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "EMPTY_SHEET", derr.Code)
	})
}

func TestMappingService_DefineMappings(t *testing.T) {
	p := newPipeline()
	batchSvc := NewBatchService(p.batchRepo, p.rowRepo, p.seqRepo, zap.NewNop())
	svc := NewMappingService(p.mappingRepo, p.batchRepo, zap.NewNop())
	ctx := context.Background()

	batch, err := batchSvc.Register(ctx, RegisterBatchInput{Name: "purchases", Kind: ingest.BatchKindPurchase})
	require.NoError(t, err)

	t.Run("defines and reads back", func(t *testing.T) {
		set, err := svc.DefineMappings(ctx, batch.ID, []MappingInput{
			{SourceColumn: "Label", Target: mapping.TargetLabel, Required: true},
			{SourceColumn: "Qty", Target: mapping.TargetPurchaseQuantity},
		})
		require.NoError(t, err)
		require.Len(t, set, 2)
		assert.Equal(t, mapping.DataTypeText, set[0].Type, "omitted type falls back to the target's default")
		assert.Equal(t, mapping.DataTypeDecimal, set[1].Type)

		got, err := svc.GetMappings(ctx, batch.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("replace is wholesale", func(t *testing.T) {
		_, err := svc.DefineMappings(ctx, batch.ID, []MappingInput{
			{SourceColumn: "Account", Target: mapping.TargetLabel, Required: true},
		})
		require.NoError(t, err)

		got, err := svc.GetMappings(ctx, batch.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Account", got[0].SourceColumn)
	})

	t.Run("duplicate column rejected without storing", func(t *testing.T) {
		_, err := svc.DefineMappings(ctx, batch.ID, []MappingInput{
			{SourceColumn: "Col", Target: mapping.TargetLabel},
			{SourceColumn: "col", Target: mapping.TargetNote},
		})
		require.Error(t, err)

		got, err := svc.GetMappings(ctx, batch.ID)
		require.NoError(t, err)
		assert.Len(t, got, 1, "failed replace must leave the previous set")
	})

	t.Run("unknown batch", func(t *testing.T) {
		_, err := svc.DefineMappings(ctx, shared.NewBaseEntity().ID, []MappingInput{
			{SourceColumn: "Label", Target: mapping.TargetLabel},
		})
		assert.Error(t, err)
	})
}
