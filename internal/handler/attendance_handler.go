package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/service"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Add godoc
// @Summary Record attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.AddAttendanceRequest true "Attendance payload"
// @Success 201 {object} response.Envelope
// @Router /attendance [post]
func (h *AttendanceHandler) Add(c *gin.Context) {
	var req service.AddAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.attendance.Add(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// StudentAttendance godoc
// @Summary Fetch a student's attendance records
// @Tags Attendance
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/attendance [get]
func (h *AttendanceHandler) StudentAttendance(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.attendance.StudentAttendance(c.Param("id")))
}
