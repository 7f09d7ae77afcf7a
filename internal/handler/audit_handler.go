package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-hq/uni-admin-gateway/internal/service"
	"github.com/campus-hq/uni-admin-gateway/pkg/response"
)

// AuditHandler exposes the local mutation trail.
type AuditHandler struct {
	audit *service.AuditService
}

// NewAuditHandler constructs AuditHandler.
func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Recent godoc
// @Summary List recent dispatched mutations
// @Tags Audit
// @Produce json
// @Param limit query int false "Max rows" default(50)
// @Success 200 {object} response.Envelope
// @Router /audit [get]
func (h *AuditHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.audit.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
