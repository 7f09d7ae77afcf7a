package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-hq/uni-admin-gateway/internal/middleware"
	"github.com/campus-hq/uni-admin-gateway/internal/service"
	"github.com/campus-hq/uni-admin-gateway/pkg/response"
)

// ReportHandler exposes the read-only analytics reports.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// TopStudents godoc
// @Summary Top 5 students by GPA
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/top-students [get]
func (h *ReportHandler) TopStudents(c *gin.Context) {
	rows, cached, err := h.reports.TopStudents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cached)
	response.JSON(c, http.StatusOK, rows, middleware.ExtractMeta(c))
}

// Debtors godoc
// @Summary Students with outstanding payments
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/debtors [get]
func (h *ReportHandler) Debtors(c *gin.Context) {
	rows, cached, err := h.reports.Debtors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cached)
	response.JSON(c, http.StatusOK, rows, middleware.ExtractMeta(c))
}

// AboveAverage godoc
// @Summary Students above course average
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports/above-average [get]
func (h *ReportHandler) AboveAverage(c *gin.Context) {
	rows, cached, err := h.reports.StudentsAboveAverage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cached)
	response.JSON(c, http.StatusOK, rows, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Export a report as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Param name path string true "Report name" Enums(top-students, debtors, above-average)
// @Param format query string false "Export format" Enums(csv, pdf)
// @Success 200 {file} binary
// @Router /reports/{name}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	result, err := h.exports.Export(c.Request.Context(), c.Param("name"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
