package handler

import (
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/report"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves accounts, label summaries and discrepancy reports.
type ReportHandler struct {
	BaseHandler
	summaries     *report.SummaryService
	discrepancies *report.DiscrepancyService
}

func NewReportHandler(summaries *report.SummaryService, discrepancies *report.DiscrepancyService) *ReportHandler {
	return &ReportHandler{summaries: summaries, discrepancies: discrepancies}
}

// RegisterRoutes mounts the account and report endpoints on the API group.
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.ListAccounts)
		accounts.GET("/:label", h.GetAccount)
	}
	reports := rg.Group("/reports")
	{
		reports.GET("/labels", h.ListSummaries)
		reports.GET("/labels/:label", h.GetSummary)
		reports.POST("/discrepancies/check", h.RunDiscrepancyCheck)
		reports.GET("/discrepancies", h.ListDiscrepancies)
	}
}

// ListAccounts returns a page of registered accounts.
func (h *ReportHandler) ListAccounts(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.summaries.ListAccounts(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.NewAccountListResponse(page.Items), page.Total, page.Page, page.PageSize)
}

// GetAccount returns one account by label.
func (h *ReportHandler) GetAccount(c *gin.Context) {
	account, err := h.summaries.GetAccount(c.Request.Context(), c.Param("label"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewAccountResponse(account))
}

// ListSummaries returns the computed position of every label.
func (h *ReportHandler) ListSummaries(c *gin.Context) {
	summaries, err := h.summaries.SummarizeAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewSummaryListResponse(summaries))
}

// GetSummary returns the computed position of one label.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaries.SummarizeLabel(c.Request.Context(), c.Param("label"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewSummaryResponse(summary))
}

// RunDiscrepancyCheck recomputes staff profit discrepancies across all
// labels and replaces the stored snapshot.
func (h *ReportHandler) RunDiscrepancyCheck(c *gin.Context) {
	results, err := h.discrepancies.RunCheck(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewDiscrepancyListResponse(results))
}

// ListDiscrepancies returns the latest stored discrepancy snapshot,
// optionally only the flagged entries.
func (h *ReportHandler) ListDiscrepancies(c *gin.Context) {
	flaggedOnly := c.Query("flagged") == "true"
	results, err := h.discrepancies.List(c.Request.Context(), flaggedOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewDiscrepancyListResponse(results))
}
