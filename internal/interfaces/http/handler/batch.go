package handler

import (
	"errors"
	"net/http"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/sheet"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchHandler serves the import batch endpoints: registration, CSV upload,
// mapping management and processing runs.
type BatchHandler struct {
	BaseHandler
	batches   *appingest.BatchService
	mappings  *appingest.MappingService
	processor *appingest.ProcessorService
	reader    *sheet.Reader
}

func NewBatchHandler(
	batches *appingest.BatchService,
	mappings *appingest.MappingService,
	processor *appingest.ProcessorService,
	reader *sheet.Reader,
) *BatchHandler {
	return &BatchHandler{
		batches:   batches,
		mappings:  mappings,
		processor: processor,
		reader:    reader,
	}
}

// RegisterRoutes mounts the batch endpoints on the API group.
func (h *BatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	batches := rg.Group("/batches")
	{
		batches.POST("", h.Register)
		batches.POST("/upload", h.Upload)
		batches.GET("", h.List)
		batches.GET("/:id", h.Get)
		batches.GET("/:id/rows", h.Rows)
		batches.PUT("/:id/mappings", h.PutMappings)
		batches.GET("/:id/mappings", h.GetMappings)
		batches.POST("/:id/process", h.Process)
	}
}

// Register creates a batch from a JSON descriptor plus its raw rows.
func (h *BatchHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	batch, err := h.batches.Register(ctx, appingest.RegisterBatchInput{
		Name:      req.Name,
		Kind:      ingest.BatchKind(req.Kind),
		Platform:  req.Platform,
		SheetName: req.SheetName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if len(req.Rows) > 0 {
		batch, err = h.batches.AttachRows(ctx, batch.ID, req.Rows)
		if err != nil {
			h.HandleError(c, err)
			return
		}
	}
	h.Created(c, dto.NewBatchResponse(batch))
}

// Upload registers a batch from a multipart CSV file. Form fields name and
// kind describe the batch; the file's rows are attached in one step.
func (h *BatchHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file upload")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}
	kind := c.PostForm("kind")

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	parsed, err := h.reader.Read(file)
	if err != nil {
		if errors.Is(err, sheet.ErrTooManyRows) {
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, err.Error())
			return
		}
		h.BadRequest(c, "Failed to parse CSV: "+err.Error())
		return
	}

	batch, err := h.batches.Register(ctx, appingest.RegisterBatchInput{
		Name:      name,
		Kind:      ingest.BatchKind(kind),
		Platform:  c.PostForm("platform"),
		SheetName: c.PostForm("sheet_name"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	batch, err = h.batches.AttachRows(ctx, batch.ID, parsed.Rows)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewBatchResponse(batch))
}

// List returns a page of batches.
func (h *BatchHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.batches.ListBatches(c.Request.Context(), shared.Filter{
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
	h.SuccessWithMeta(c, dto.NewBatchListResponse(page.Items), page.Total, page.Page, page.PageSize)
}

// Get returns one batch by ID.
func (h *BatchHandler) Get(c *gin.Context) {
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}

	batch, err := h.batches.GetBatch(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewBatchResponse(batch))
}

// Rows returns a batch's stored rows, optionally only the failed ones.
func (h *BatchHandler) Rows(c *gin.Context) {
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}

	rows, err := h.batches.GetRows(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	failedOnly := c.Query("failed") == "true"
	out := make([]dto.RowResponse, 0, len(rows))
	for _, row := range rows {
		if failedOnly && row.Error == "" {
			continue
		}
		out = append(out, dto.NewRowResponse(row))
	}
	h.Success(c, out)
}

// PutMappings replaces the batch's field mapping set.
func (h *BatchHandler) PutMappings(c *gin.Context) {
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}

	var req dto.MappingSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	inputs := make([]appingest.MappingInput, len(req.Mappings))
	for i, m := range req.Mappings {
		inputs[i] = appingest.MappingInput{
			SourceColumn: m.SourceColumn,
			Target:       mapping.TargetField(m.Target),
			Type:         mapping.DataType(m.Type),
			Required:     m.Required,
			DefaultValue: m.DefaultValue,
		}
	}

	set, err := h.mappings.DefineMappings(c.Request.Context(), batchID, inputs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewMappingSetResponse(set))
}

// GetMappings returns the batch's current mapping set.
func (h *BatchHandler) GetMappings(c *gin.Context) {
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}

	set, err := h.mappings.GetMappings(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewMappingSetResponse(set))
}

// Process runs the batch processor and returns the run result.
func (h *BatchHandler) Process(c *gin.Context) {
	batchID, ok := h.batchID(c)
	if !ok {
		return
	}

	result, err := h.processor.Process(c.Request.Context(), batchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewProcessResponse(result))
}

func (h *BatchHandler) batchID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return uuid.Nil, false
	}
	return id, true
}
