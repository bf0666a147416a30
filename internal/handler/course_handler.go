package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonylane/studio-admin-api/internal/service"
	"github.com/harmonylane/studio-admin-api/pkg/response"
)

// CourseHandler exposes the read-only course catalog.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param stats query bool false "Include enrollment notification counts"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	if c.Query("stats") == "true" {
		response.JSON(c, http.StatusOK, h.courses.Stats(c.Request.Context()))
		return
	}
	response.JSON(c, http.StatusOK, h.courses.List(c.Request.Context()))
}

// Get godoc
// @Summary Get course by id
// @Description Unknown ids resolve to the catalog sentinel instead of a 404.
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.courses.Get(c.Request.Context(), id))
}
