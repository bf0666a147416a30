package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harmonylane/studio-admin-api/internal/service"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
	"github.com/harmonylane/studio-admin-api/pkg/response"
)

// BatchHandler exposes batch endpoints. Writes go through the enrollment
// service; reads go through the batch read service.
type BatchHandler struct {
	batches    *service.BatchService
	enrollment *service.EnrollmentService
}

// NewBatchHandler constructs BatchHandler.
func NewBatchHandler(batches *service.BatchService, enrollment *service.EnrollmentService) *BatchHandler {
	return &BatchHandler{batches: batches, enrollment: enrollment}
}

// List godoc
// @Summary List batches
// @Tags Batches
// @Produce json
// @Param search query string false "Search by name or description"
// @Success 200 {object} response.Envelope
// @Router /batches [get]
func (h *BatchHandler) List(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search"))
	response.JSON(c, http.StatusOK, h.batches.List(c.Request.Context(), term))
}

// Get godoc
// @Summary Get batch detail
// @Tags Batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} response.Envelope
// @Router /batches/{id} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := h.batches.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Create godoc
// @Summary Create batch
// @Description Creates the batch and enrolls its initial members in the batch's course.
// @Tags Batches
// @Accept json
// @Produce json
// @Param payload body service.CreateBatchRequest true "Batch payload"
// @Success 201 {object} response.Envelope
// @Router /batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	var req service.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	batch, err := h.enrollment.CreateBatchWithStudents(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, batch)
}

// AddStudents godoc
// @Summary Add students to a batch
// @Description Merges students into the batch and enrolls newcomers in the batch's course.
// @Tags Batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param payload body service.AddStudentsRequest true "Membership payload"
// @Success 200 {object} response.Envelope
// @Router /batches/{id}/students [post]
func (h *BatchHandler) AddStudents(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.AddStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	batch, err := h.enrollment.AddStudentsToBatch(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, batch)
}
