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

type SeasonService interface {
	ListSeasons(ctx context.Context) ([]domain.Season, error)
	GetCurrentSeason(ctx context.Context) (domain.Season, error)
	GetSeason(ctx context.Context, id uint) (domain.Season, error)
	CreateSeason(ctx context.Context, season domain.Season) (domain.Season, error)
	UpdateSeason(ctx context.Context, season domain.Season) (domain.Season, error)
	DeleteSeason(ctx context.Context, id uint) error
}

type SeasonHandler struct {
	svc SeasonService
}

func NewSeasonHandler(svc SeasonService) *SeasonHandler {
	return &SeasonHandler{
		svc: svc,
	}
}

// HandleGetSeasons godoc
// @Summary      Get all seasons, newest first
// @Tags         seasons
// @Produce      json
// @Success      200 {array}  domain.Season
// @Failure      500 {object} response.Err
// @Router       /seasons [get]
func (h *SeasonHandler) HandleGetSeasons(ctx *gin.Context) {
	seasons, err := h.svc.ListSeasons(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSeasons -> h.svc.ListSeasons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, seasons)
}

// HandleGetCurrentSeason godoc
// @Summary      Get the active season
// @Tags         seasons
// @Produce      json
// @Success      200 {object} domain.Season
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /seasons/current [get]
func (h *SeasonHandler) HandleGetCurrentSeason(ctx *gin.Context) {
	season, err := h.svc.GetCurrentSeason(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", "current"))

			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentSeason -> h.svc.GetCurrentSeason -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, season)
}

// HandleListSeasons godoc
// @Summary      List all seasons for the dashboard
// @Tags         admin/seasons
// @Produce      json
// @Success      200 {array}  domain.Season
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/seasons [get]
// @Security BearerAuth
func (h *SeasonHandler) HandleListSeasons(ctx *gin.Context) {
	seasons, err := h.svc.ListSeasons(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSeasons -> h.svc.ListSeasons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, seasons)
}

// HandleCreateSeason godoc
// @Summary      Create a season
// @Description  Creating an active season deactivates every other season.
// @Tags         admin/seasons
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateSeasonRequest true "request body"
// @Success      201     {object} domain.Season
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/seasons [post]
// @Security BearerAuth
func (h *SeasonHandler) HandleCreateSeason(ctx *gin.Context) {
	var req request.CreateSeasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateSeason(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSeason -> h.svc.CreateSeason -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateSeason godoc
// @Summary      Update a season
// @Tags         admin/seasons
// @Accept       json
// @Produce      json
// @Param        seasonID path     int                         true "season ID"
// @Param        request  body     request.UpdateSeasonRequest true "request body"
// @Success      200      {object} domain.Season
// @Failure      400      {object} response.Err
// @Failure      401      {object} response.Err
// @Failure      403      {object} response.Err
// @Failure      404      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /admin/seasons/{seasonID} [put]
// @Security BearerAuth
func (h *SeasonHandler) HandleUpdateSeason(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "seasonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateSeasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	season, err := h.svc.GetSeason(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateSeason -> h.svc.GetSeason -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&season)

	updated, err := h.svc.UpdateSeason(ctx.Request.Context(), season)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateSeason -> h.svc.UpdateSeason -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteSeason godoc
// @Summary      Delete a season
// @Tags         admin/seasons
// @Produce      json
// @Param        seasonID path     int true "season ID"
// @Success      200      {object} response.Message
// @Failure      400      {object} response.Err
// @Failure      401      {object} response.Err
// @Failure      403      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /admin/seasons/{seasonID} [delete]
// @Security BearerAuth
func (h *SeasonHandler) HandleDeleteSeason(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "seasonID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteSeason(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteSeason -> h.svc.DeleteSeason -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}
