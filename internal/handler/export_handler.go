package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/service"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// ExportHandler serves rendered report card files.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// ReportCard godoc
// @Summary Download a student's report card
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Student id"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/report [get]
func (h *ExportHandler) ReportCard(c *gin.Context) {
	file, err := h.exports.ReportCard(c.Param("id"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
