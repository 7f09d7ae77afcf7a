package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-hq/uni-admin-gateway/internal/service"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
	"github.com/campus-hq/uni-admin-gateway/pkg/response"
)

// ImportHandler exposes the bulk student import endpoint.
type ImportHandler struct {
	imports *service.ImportService
}

// NewImportHandler constructs ImportHandler.
func NewImportHandler(imports *service.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// ImportStudents godoc
// @Summary Import students from a CSV file
// @Tags Students
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file with full_name,email,status,gpa columns"
// @Success 200 {object} response.Envelope
// @Router /students/import [post]
func (h *ImportHandler) ImportStudents(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing csv file upload"))
		return
	}
	defer file.Close() //nolint:errcheck

	summary, err := h.imports.ImportStudents(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
