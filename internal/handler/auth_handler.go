package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
	"github.com/campus-hq/uni-admin-gateway/pkg/response"
)

type sessionService interface {
	Login(ctx context.Context, req dto.LoginRequest) error
	Logout(ctx context.Context) error
	Status() dto.SessionStatus
}

// AuthHandler exposes the console session endpoints.
type AuthHandler struct {
	sessions sessionService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(sessions sessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login godoc
// @Summary Open a console session
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /session/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInvalidCredentials, ""))
		return
	}
	if err := h.sessions.Login(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SessionStatus{Authenticated: true})
}

// Logout godoc
// @Summary Close the console session
// @Tags Session
// @Produce json
// @Success 204
// @Router /session/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Status godoc
// @Summary Report session state
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *AuthHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.sessions.Status())
}
