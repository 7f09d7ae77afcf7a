package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-hq/uni-admin-gateway/internal/service"
	"github.com/campus-hq/uni-admin-gateway/pkg/response"
)

// StatusHandler exposes an aggregated runtime snapshot.
type StatusHandler struct {
	metrics *service.MetricsService
}

// NewStatusHandler constructs StatusHandler.
func NewStatusHandler(metrics *service.MetricsService) *StatusHandler {
	return &StatusHandler{metrics: metrics}
}

// Status godoc
// @Summary Runtime metrics snapshot
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot())
}
