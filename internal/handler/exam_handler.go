package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/service"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// ExamHandler exposes exam schedule endpoints.
type ExamHandler struct {
	exams *service.ExamService
}

// NewExamHandler constructs handler.
func NewExamHandler(exams *service.ExamService) *ExamHandler {
	return &ExamHandler{exams: exams}
}

// List godoc
// @Summary List scheduled exams
// @Tags Exams
// @Produce json
// @Param subject query string false "Filter by subject"
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	if subject := c.Query("subject"); subject != "" {
		response.JSON(c, http.StatusOK, h.exams.ListBySubject(subject))
		return
	}
	response.JSON(c, http.StatusOK, h.exams.List())
}

// Create godoc
// @Summary Schedule an exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param payload body service.CreateExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.exams.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Delete godoc
// @Summary Remove an exam from the schedule
// @Tags Exams
// @Produce json
// @Param id path string true "Exam id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /exams/{id} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
	if err := h.exams.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
