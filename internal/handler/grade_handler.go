package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/service"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades *service.GradeService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(grades *service.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// Add godoc
// @Summary Record a grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.AddGradeRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) Add(c *gin.Context) {
	var req service.AddGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, err := h.grades.Add(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, grade)
}

// StudentGrades godoc
// @Summary Fetch a student's grades keyed by subject
// @Tags Grades
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/grades [get]
func (h *GradeHandler) StudentGrades(c *gin.Context) {
	grades, err := h.grades.StudentGrades(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}
