package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonylane/studio-admin-api/internal/service"
	"github.com/harmonylane/studio-admin-api/pkg/response"
)

// ExportHandler serves roster downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Students godoc
// @Summary Download the student roster
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /exports/students [get]
func (h *ExportHandler) Students(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	result, err := h.exports.StudentRoster(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendDownload(c, result)
}

// Batch godoc
// @Summary Download a batch member list
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Batch ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /exports/batches/{id} [get]
func (h *ExportHandler) Batch(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	result, err := h.exports.BatchRoster(c.Request.Context(), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendDownload(c, result)
}

func sendDownload(c *gin.Context, result service.ExportResult) {
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
