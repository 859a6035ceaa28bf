package integration

import (
	"context"
	"testing"
	"time"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	reportapp "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/report"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/cache"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type services struct {
	batches   *appingest.BatchService
	mappings  *appingest.MappingService
	processor *appingest.ProcessorService
	summaries *reportapp.SummaryService
}

func newServices(tdb *TestDB) services {
	log := zap.NewNop()
	batchRepo := persistence.NewGormBatchRepository(tdb.DB)
	rowRepo := persistence.NewGormRowRepository(tdb.DB)
	seqRepo := persistence.NewGormSequenceRepository(tdb.DB)
	mappingRepo := persistence.NewGormMappingRepository(tdb.DB)
	accountRepo := persistence.NewGormAccountRepository(tdb.DB)
	lotRepo := persistence.NewGormPurchaseLotRepository(tdb.DB)
	bonusRepo := persistence.NewGormBonusRepository(tdb.DB)
	saleRepo := persistence.NewGormSaleRepository(tdb.DB)

	return services{
		batches:  appingest.NewBatchService(batchRepo, rowRepo, seqRepo, log),
		mappings: appingest.NewMappingService(mappingRepo, batchRepo, log),
		processor: appingest.NewProcessorService(
			batchRepo,
			mappingRepo,
			persistence.NewGormTransactionScope(tdb.DB),
			cache.NewInMemoryBatchLock(time.Minute),
			log,
		),
		summaries: reportapp.NewSummaryService(accountRepo, lotRepo, bonusRepo, saleRepo, log),
	}
}

func TestImportFlowAgainstPostgres(t *testing.T) {
	tdb := NewTestDB(t)
	svc := newServices(tdb)
	ctx := context.Background()

	batch, err := svc.batches.Register(ctx, appingest.RegisterBatchInput{
		Name: "June purchases",
		Kind: ingest.BatchKindPurchase,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^IMP-\d{8}-\d{6}$`, batch.Code)

	_, err = svc.batches.AttachRows(ctx, batch.ID, []map[string]string{
		{"Account": "G-100", "Qty": "10", "Rate": "20", "Bonus": "5"},
		{"Account": "G-100", "Qty": "۳", "Rate": "25", "Bonus": ""},
		{"Account": "", "Qty": "1", "Rate": "1", "Bonus": ""},
	})
	require.NoError(t, err)

	_, err = svc.mappings.DefineMappings(ctx, batch.ID, []appingest.MappingInput{
		{SourceColumn: "Account", Target: mapping.TargetLabel, Type: mapping.DataTypeText, Required: true},
		{SourceColumn: "Qty", Target: mapping.TargetPurchaseQuantity, Type: mapping.DataTypeDecimal, Required: true},
		{SourceColumn: "Rate", Target: mapping.TargetPurchaseRate, Type: mapping.DataTypeDecimal},
		{SourceColumn: "Bonus", Target: mapping.TargetSilverBonus, Type: mapping.DataTypeDecimal},
	})
	require.NoError(t, err)

	result, err := svc.processor.Process(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.ProcessedRows)
	assert.Equal(t, 1, result.ErrorRows)

	summary, err := svc.summaries.SummarizeLabel(ctx, "G-100")
	require.NoError(t, err)
	assert.True(t, summary.GoldPurchased.Equal(decimal.NewFromInt(13)))
	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(275)))
	assert.True(t, summary.SilverGranted.Equal(decimal.NewFromInt(5)))
}

func TestSequenceAllocationIsAtomic(t *testing.T) {
	tdb := NewTestDB(t)
	seqRepo := persistence.NewGormSequenceRepository(tdb.DB)
	ctx := context.Background()

	const workers = 8
	results := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		go func() {
			v, err := seqRepo.Next(ctx, "batch:20260601")
			if err != nil {
				results <- -1
				return
			}
			results <- v
		}()
	}

	seen := make(map[int64]bool)
	for i := 0; i < workers; i++ {
		v := <-results
		require.Positive(t, v, "sequence allocation failed")
		assert.False(t, seen[v], "duplicate sequence value %d", v)
		seen[v] = true
	}
}

func TestReprocessingIsIdempotent(t *testing.T) {
	tdb := NewTestDB(t)
	svc := newServices(tdb)
	ctx := context.Background()

	batch, err := svc.batches.Register(ctx, appingest.RegisterBatchInput{
		Name: "rerun",
		Kind: ingest.BatchKindPurchase,
	})
	require.NoError(t, err)

	_, err = svc.batches.AttachRows(ctx, batch.ID, []map[string]string{
		{"Account": "G-500", "Qty": "4", "Rate": "10"},
	})
	require.NoError(t, err)

	_, err = svc.mappings.DefineMappings(ctx, batch.ID, []appingest.MappingInput{
		{SourceColumn: "Account", Target: mapping.TargetLabel, Type: mapping.DataTypeText, Required: true},
		{SourceColumn: "Qty", Target: mapping.TargetPurchaseQuantity, Type: mapping.DataTypeDecimal, Required: true},
		{SourceColumn: "Rate", Target: mapping.TargetPurchaseRate, Type: mapping.DataTypeDecimal},
	})
	require.NoError(t, err)

	_, err = svc.processor.Process(ctx, batch.ID)
	require.NoError(t, err)
	_, err = svc.processor.Process(ctx, batch.ID)
	require.NoError(t, err)

	// Running twice must not double the position.
	summary, err := svc.summaries.SummarizeLabel(ctx, "G-500")
	require.NoError(t, err)
	assert.True(t, summary.GoldPurchased.Equal(decimal.NewFromInt(4)))
}
