package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-hq/uni-admin-gateway/internal/service"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
	"github.com/campus-hq/uni-admin-gateway/pkg/response"
)

// CacheHandler exposes cache warm-up controls.
type CacheHandler struct {
	warm *service.WarmService
}

// NewCacheHandler constructs CacheHandler.
func NewCacheHandler(warm *service.WarmService) *CacheHandler {
	return &CacheHandler{warm: warm}
}

// Warm godoc
// @Summary Schedule cache warm-up
// @Tags Cache
// @Produce json
// @Param tag query string false "Warm a single collection"
// @Success 202 {object} response.Envelope
// @Router /cache/warm [post]
func (h *CacheHandler) Warm(c *gin.Context) {
	if tag := c.Query("tag"); tag != "" {
		if err := h.warm.WarmTag(tag); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "cannot warm collection"))
			return
		}
		response.JSON(c, http.StatusAccepted, gin.H{"scheduled": []string{tag}})
		return
	}

	tags, err := h.warm.WarmAll()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule warm-up"))
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"scheduled": tags})
}

// Tags godoc
// @Summary List collections available for warm-up
// @Tags Cache
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /cache/collections [get]
func (h *CacheHandler) Tags(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"collections": h.warm.Tags()})
}
