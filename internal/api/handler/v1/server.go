package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skyblocklegends/api/internal/api/handler/v1/request"
	"github.com/skyblocklegends/api/internal/api/handler/v1/response"
	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/service"
)

type ServerService interface {
	GetStatus(ctx context.Context) (domain.ServerConfig, error)
	GetConfig(ctx context.Context) (domain.ServerConfig, error)
	UpdateConfig(ctx context.Context, conf domain.ServerConfig) (domain.ServerConfig, error)
}

type ServerHandler struct {
	svc ServerService
}

func NewServerHandler(svc ServerService) *ServerHandler {
	return &ServerHandler{
		svc: svc,
	}
}

// HandleGetStatus godoc
// @Summary      Get server status
// @Description  Returns the stored server config, or a default when nothing is configured. Clients poll this endpoint.
// @Tags         server
// @Produce      json
// @Success      200 {object} domain.ServerConfig
// @Failure      500 {object} response.Err
// @Router       /server/status [get]
func (h *ServerHandler) HandleGetStatus(ctx *gin.Context) {
	status, err := h.svc.GetStatus(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStatus -> h.svc.GetStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, status)
}

// HandleGetConfig godoc
// @Summary      Get server config
// @Tags         admin/server
// @Produce      json
// @Success      200 {object} domain.ServerConfig
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/server/config [get]
// @Security BearerAuth
func (h *ServerHandler) HandleGetConfig(ctx *gin.Context) {
	conf, err := h.svc.GetConfig(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrServerConfigNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("server config", 1))

			return
		}

		err = fmt.Errorf("v1.HandleGetConfig -> h.svc.GetConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, conf)
}

// HandleUpdateConfig godoc
// @Summary      Update server config
// @Description  Upserts the singleton server config row.
// @Tags         admin/server
// @Accept       json
// @Produce      json
// @Param        request body     request.UpdateServerConfigRequest true "request body"
// @Success      200     {object} domain.ServerConfig
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/server/config [put]
// @Security BearerAuth
func (h *ServerHandler) HandleUpdateConfig(ctx *gin.Context) {
	var req request.UpdateServerConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	saved, err := h.svc.UpdateConfig(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateConfig -> h.svc.UpdateConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, saved)
}
