package handler

import (
	"net/http"
	"testing"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// importAndProcess feeds a full purchase plus sale cycle through the API so
// report endpoints have real positions to work from.
func importAndProcess(t *testing.T, engine *gin.Engine) {
	t.Helper()

	purchaseID := registerBatch(t, engine, "purchase", []map[string]string{
		{"Account": "G-100", "Qty": "10", "Rate": "20", "Bonus": "4"},
		{"Account": "G-200", "Qty": "8", "Rate": "25", "Bonus": ""},
	})
	putPurchaseMappings(t, engine, purchaseID)
	w := doJSON(t, engine, http.MethodPost, "/api/v1/batches/"+purchaseID+"/process", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	saleID := registerBatch(t, engine, "sale", []map[string]string{
		// Revenue 500 against cost 200, staff reported 500.
		{"Account": "G-100", "Qty": "10", "Rate": "50", "Kind": "gold", "Staff": "500"},
		// No staff report for G-200, so no discrepancy entry.
		{"Account": "G-200", "Qty": "4", "Rate": "40", "Kind": "gold", "Staff": ""},
	})
	put := doJSON(t, engine, http.MethodPut, "/api/v1/batches/"+saleID+"/mappings", dto.MappingSetRequest{
		Mappings: []dto.MappingRequest{
			{SourceColumn: "Account", Target: "label", Type: "text", Required: true},
			{SourceColumn: "Qty", Target: "sale_quantity", Type: "decimal", Required: true},
			{SourceColumn: "Rate", Target: "sale_rate", Type: "decimal"},
			{SourceColumn: "Kind", Target: "sale_kind", Type: "text"},
			{SourceColumn: "Staff", Target: "staff_profit", Type: "decimal"},
		},
	})
	require.Equal(t, http.StatusOK, put.Code, put.Body.String())
	w = doJSON(t, engine, http.MethodPost, "/api/v1/batches/"+saleID+"/process", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestReportHandler_ListAccounts(t *testing.T) {
	engine := setupAPI(t)
	importAndProcess(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/accounts?page=1&page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "G-100", first["label"])
}

func TestReportHandler_GetAccount(t *testing.T) {
	engine := setupAPI(t)
	importAndProcess(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/accounts/G-100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "G-100", dataMap(t, decodeResponse(t, w))["label"])

	missing := doJSON(t, engine, http.MethodGet, "/api/v1/accounts/G-999", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestReportHandler_Summaries(t *testing.T) {
	engine := setupAPI(t)
	importAndProcess(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/reports/labels", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	items, ok := decodeResponse(t, w).Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	one := doJSON(t, engine, http.MethodGet, "/api/v1/reports/labels/G-100", nil)
	require.Equal(t, http.StatusOK, one.Code)
	pos := dataMap(t, decodeResponse(t, one))
	assert.Equal(t, "G-100", pos["label"])
	assert.Equal(t, "10", pos["gold_purchased"])
	assert.Equal(t, "10", pos["gold_sold"])
	assert.Equal(t, "0", pos["gold_remaining"])
	// Sold 10 at 50 against 200 cost.
	assert.Equal(t, "500", pos["total_revenue"])
	assert.Equal(t, "300", pos["gold_profit"])
	assert.Equal(t, "0", pos["silver_profit"])
	assert.Equal(t, "300", pos["calculated_profit"])
	assert.Equal(t, true, pos["has_staff_profit"])
}

func TestReportHandler_DiscrepancyCheckAndList(t *testing.T) {
	engine := setupAPI(t)
	importAndProcess(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/reports/discrepancies/check", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	results, ok := decodeResponse(t, w).Data.([]any)
	require.True(t, ok)
	// Only G-100 has a staff report to compare against.
	require.Len(t, results, 1)
	entry, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "G-100", entry["label"])
	assert.Equal(t, "300", entry["calculated_profit"])
	assert.Equal(t, "500", entry["staff_profit"])
	assert.Equal(t, true, entry["flagged"])

	flagged := doJSON(t, engine, http.MethodGet, "/api/v1/reports/discrepancies?flagged=true", nil)
	require.Equal(t, http.StatusOK, flagged.Code)
	stored, ok := decodeResponse(t, flagged).Data.([]any)
	require.True(t, ok)
	assert.Len(t, stored, 1)
}
