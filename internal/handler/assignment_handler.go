package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/service"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// AssignmentHandler exposes assignment and submission endpoints.
type AssignmentHandler struct {
	assignments *service.AssignmentService
}

// NewAssignmentHandler constructs handler.
func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// List godoc
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Param subject query string false "Filter by subject"
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	if subject := c.Query("subject"); subject != "" {
		response.JSON(c, http.StatusOK, h.assignments.ListBySubject(subject))
		return
	}
	response.JSON(c, http.StatusOK, h.assignments.List())
}

// Create godoc
// @Summary Publish an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body service.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	assignment, err := h.assignments.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Delete godoc
// @Summary Delete an assignment and its submissions
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignments.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpsertSubmission godoc
// @Summary Submit or update a student's work for an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment id"
// @Param payload body service.UpsertSubmissionRequest true "Submission payload"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/submissions [put]
func (h *AssignmentHandler) UpsertSubmission(c *gin.Context) {
	var req service.UpsertSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.AssignmentID = c.Param("id")

	submission, err := h.assignments.UpsertSubmission(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submission)
}

// StudentSubmissions godoc
// @Summary Fetch a student's submissions
// @Tags Assignments
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/submissions [get]
func (h *AssignmentHandler) StudentSubmissions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.assignments.StudentSubmissions(c.Param("id")))
}
