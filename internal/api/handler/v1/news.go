package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skyblocklegends/api/internal/api/handler/v1/request"
	"github.com/skyblocklegends/api/internal/api/handler/v1/response"
	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/service"
)

type NewsService interface {
	GetPublished(ctx context.Context, limit int) ([]domain.NewsArticle, error)
	GetFeatured(ctx context.Context) ([]domain.NewsArticle, error)
	GetArticle(ctx context.Context, id uint) (domain.NewsArticle, error)
	GetPublishedArticle(ctx context.Context, id uint) (domain.NewsArticle, error)
	ListArticles(ctx context.Context) ([]domain.NewsArticle, error)
	CreateArticle(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error)
	UpdateArticle(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error)
	DeleteArticle(ctx context.Context, id uint) error
}

type NewsHandler struct {
	svc NewsService
}

func NewNewsHandler(svc NewsService) *NewsHandler {
	return &NewsHandler{
		svc: svc,
	}
}

// HandleGetNews godoc
// @Summary      Get published news
// @Tags         news
// @Produce      json
// @Param        limit query    int false "max number of articles"
// @Success      200   {array}  domain.NewsArticle
// @Failure      500   {object} response.Err
// @Router       /news [get]
func (h *NewsHandler) HandleGetNews(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	articles, err := h.svc.GetPublished(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetNews -> h.svc.GetPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, articles)
}

// HandleGetFeaturedNews godoc
// @Summary      Get featured news
// @Tags         news
// @Produce      json
// @Success      200 {array}  domain.NewsArticle
// @Failure      500 {object} response.Err
// @Router       /news/featured [get]
func (h *NewsHandler) HandleGetFeaturedNews(ctx *gin.Context) {
	articles, err := h.svc.GetFeatured(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFeaturedNews -> h.svc.GetFeatured -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, articles)
}

// HandleGetArticle godoc
// @Summary      Get a published article by ID
// @Tags         news
// @Produce      json
// @Param        articleID path     int true "article ID"
// @Success      200       {object} domain.NewsArticle
// @Failure      400       {object} response.Err
// @Failure      404       {object} response.Err
// @Failure      500       {object} response.Err
// @Router       /news/{articleID} [get]
func (h *NewsHandler) HandleGetArticle(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "articleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	article, err := h.svc.GetPublishedArticle(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("article", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetArticle -> h.svc.GetPublishedArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, article)
}

// HandleListArticles godoc
// @Summary      List all articles, drafts included
// @Tags         admin/news
// @Produce      json
// @Success      200 {array}  domain.NewsArticle
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/news [get]
// @Security BearerAuth
func (h *NewsHandler) HandleListArticles(ctx *gin.Context) {
	articles, err := h.svc.ListArticles(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListArticles -> h.svc.ListArticles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, articles)
}

// HandleCreateArticle godoc
// @Summary      Create a news article
// @Tags         admin/news
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateNewsRequest true "request body"
// @Success      201     {object} domain.NewsArticle
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/news [post]
// @Security BearerAuth
func (h *NewsHandler) HandleCreateArticle(ctx *gin.Context) {
	claims, respErr := getClaims(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateArticle(ctx.Request.Context(), req.ToDomain(claims.UserID))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateArticle -> h.svc.CreateArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateArticle godoc
// @Summary      Update a news article
// @Tags         admin/news
// @Accept       json
// @Produce      json
// @Param        articleID path     int                       true "article ID"
// @Param        request   body     request.UpdateNewsRequest true "request body"
// @Success      200       {object} domain.NewsArticle
// @Failure      400       {object} response.Err
// @Failure      401       {object} response.Err
// @Failure      403       {object} response.Err
// @Failure      404       {object} response.Err
// @Failure      500       {object} response.Err
// @Router       /admin/news/{articleID} [put]
// @Security BearerAuth
func (h *NewsHandler) HandleUpdateArticle(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "articleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	article, err := h.svc.GetArticle(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("article", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateArticle -> h.svc.GetArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&article)

	updated, err := h.svc.UpdateArticle(ctx.Request.Context(), article)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateArticle -> h.svc.UpdateArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteArticle godoc
// @Summary      Delete a news article
// @Tags         admin/news
// @Produce      json
// @Param        articleID path     int true "article ID"
// @Success      200       {object} response.Message
// @Failure      400       {object} response.Err
// @Failure      401       {object} response.Err
// @Failure      403       {object} response.Err
// @Failure      500       {object} response.Err
// @Router       /admin/news/{articleID} [delete]
// @Security BearerAuth
func (h *NewsHandler) HandleDeleteArticle(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "articleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteArticle(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteArticle -> h.svc.DeleteArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}
