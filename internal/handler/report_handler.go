package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-portal-api/internal/service"
	"github.com/campushq/college-portal-api/pkg/response"
)

// ReportHandler exposes downloadable admin reports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// StudentRoster godoc
// @Summary Student roster CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 {string} string "csv"
// @Router /admin/reports/students [get]
func (h *ReportHandler) StudentRoster(c *gin.Context) {
	data, err := h.reports.StudentRoster(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="students.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// StudentAttendance godoc
// @Summary Student attendance PDF
// @Tags Reports
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Success 200 {string} string "pdf"
// @Failure 404 {object} response.Envelope
// @Router /admin/reports/attendance/{id} [get]
func (h *ReportHandler) StudentAttendance(c *gin.Context) {
	data, filename, err := h.reports.StudentAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
