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

type SiteService interface {
	ListTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id uint) (domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error

	ListVotingSites(ctx context.Context, activeOnly bool) ([]domain.VotingSite, error)
	GetVotingSite(ctx context.Context, id uint) (domain.VotingSite, error)
	CreateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error)
	UpdateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error)
	DeleteVotingSite(ctx context.Context, id uint) error

	ListGalleryImages(ctx context.Context, visibleOnly bool) ([]domain.GalleryImage, error)
	GetGalleryImage(ctx context.Context, id uint) (domain.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uint) error
}

// SiteHandler serves team members, voting sites and gallery images.
type SiteHandler struct {
	svc SiteService
}

func NewSiteHandler(svc SiteService) *SiteHandler {
	return &SiteHandler{
		svc: svc,
	}
}

// HandleGetTeam godoc
// @Summary      Get active team members
// @Tags         team
// @Produce      json
// @Success      200 {array}  domain.TeamMember
// @Failure      500 {object} response.Err
// @Router       /team [get]
func (h *SiteHandler) HandleGetTeam(ctx *gin.Context) {
	members, err := h.svc.ListTeamMembers(ctx.Request.Context(), true)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTeam -> h.svc.ListTeamMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleListTeam godoc
// @Summary      List all team members
// @Tags         admin/team
// @Produce      json
// @Success      200 {array}  domain.TeamMember
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/team [get]
// @Security BearerAuth
func (h *SiteHandler) HandleListTeam(ctx *gin.Context) {
	members, err := h.svc.ListTeamMembers(ctx.Request.Context(), false)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTeam -> h.svc.ListTeamMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleCreateTeamMember godoc
// @Summary      Create a team member
// @Tags         admin/team
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateTeamMemberRequest true "request body"
// @Success      201     {object} domain.TeamMember
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/team [post]
// @Security BearerAuth
func (h *SiteHandler) HandleCreateTeamMember(ctx *gin.Context) {
	var req request.CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateTeamMember(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTeamMember -> h.svc.CreateTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTeamMember godoc
// @Summary      Update a team member
// @Tags         admin/team
// @Accept       json
// @Produce      json
// @Param        memberID path     int                             true "member ID"
// @Param        request  body     request.UpdateTeamMemberRequest true "request body"
// @Success      200      {object} domain.TeamMember
// @Failure      400      {object} response.Err
// @Failure      401      {object} response.Err
// @Failure      403      {object} response.Err
// @Failure      404      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /admin/team/{memberID} [put]
// @Security BearerAuth
func (h *SiteHandler) HandleUpdateTeamMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	member, err := h.svc.GetTeamMember(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team member", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTeamMember -> h.svc.GetTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&member)

	updated, err := h.svc.UpdateTeamMember(ctx.Request.Context(), member)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateTeamMember -> h.svc.UpdateTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTeamMember godoc
// @Summary      Delete a team member
// @Tags         admin/team
// @Produce      json
// @Param        memberID path     int true "member ID"
// @Success      200      {object} response.Message
// @Failure      400      {object} response.Err
// @Failure      401      {object} response.Err
// @Failure      403      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /admin/team/{memberID} [delete]
// @Security BearerAuth
func (h *SiteHandler) HandleDeleteTeamMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteTeamMember(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteTeamMember -> h.svc.DeleteTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}

// HandleGetVotingSites godoc
// @Summary      Get active voting sites
// @Tags         voting
// @Produce      json
// @Success      200 {array}  domain.VotingSite
// @Failure      500 {object} response.Err
// @Router       /voting-sites [get]
func (h *SiteHandler) HandleGetVotingSites(ctx *gin.Context) {
	sites, err := h.svc.ListVotingSites(ctx.Request.Context(), true)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetVotingSites -> h.svc.ListVotingSites -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sites)
}

// HandleListVotingSites godoc
// @Summary      List all voting sites
// @Tags         admin/voting
// @Produce      json
// @Success      200 {array}  domain.VotingSite
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/voting-sites [get]
// @Security BearerAuth
func (h *SiteHandler) HandleListVotingSites(ctx *gin.Context) {
	sites, err := h.svc.ListVotingSites(ctx.Request.Context(), false)
	if err != nil {
		err = fmt.Errorf("v1.HandleListVotingSites -> h.svc.ListVotingSites -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sites)
}

// HandleCreateVotingSite godoc
// @Summary      Create a voting site
// @Tags         admin/voting
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateVotingSiteRequest true "request body"
// @Success      201     {object} domain.VotingSite
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/voting-sites [post]
// @Security BearerAuth
func (h *SiteHandler) HandleCreateVotingSite(ctx *gin.Context) {
	var req request.CreateVotingSiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateVotingSite(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateVotingSite -> h.svc.CreateVotingSite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateVotingSite godoc
// @Summary      Update a voting site
// @Tags         admin/voting
// @Accept       json
// @Produce      json
// @Param        siteID  path     int                             true "site ID"
// @Param        request body     request.UpdateVotingSiteRequest true "request body"
// @Success      200     {object} domain.VotingSite
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/voting-sites/{siteID} [put]
// @Security BearerAuth
func (h *SiteHandler) HandleUpdateVotingSite(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "siteID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateVotingSiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	site, err := h.svc.GetVotingSite(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVotingSiteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("voting site", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateVotingSite -> h.svc.GetVotingSite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&site)

	updated, err := h.svc.UpdateVotingSite(ctx.Request.Context(), site)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateVotingSite -> h.svc.UpdateVotingSite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteVotingSite godoc
// @Summary      Delete a voting site
// @Tags         admin/voting
// @Produce      json
// @Param        siteID path     int true "site ID"
// @Success      200    {object} response.Message
// @Failure      400    {object} response.Err
// @Failure      401    {object} response.Err
// @Failure      403    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /admin/voting-sites/{siteID} [delete]
// @Security BearerAuth
func (h *SiteHandler) HandleDeleteVotingSite(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "siteID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteVotingSite(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteVotingSite -> h.svc.DeleteVotingSite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}

// HandleGetGallery godoc
// @Summary      Get visible gallery images
// @Tags         gallery
// @Produce      json
// @Success      200 {array}  domain.GalleryImage
// @Failure      500 {object} response.Err
// @Router       /gallery [get]
func (h *SiteHandler) HandleGetGallery(ctx *gin.Context) {
	images, err := h.svc.ListGalleryImages(ctx.Request.Context(), true)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetGallery -> h.svc.ListGalleryImages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, images)
}

// HandleListGallery godoc
// @Summary      List all gallery images
// @Tags         admin/gallery
// @Produce      json
// @Success      200 {array}  domain.GalleryImage
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/gallery [get]
// @Security BearerAuth
func (h *SiteHandler) HandleListGallery(ctx *gin.Context) {
	images, err := h.svc.ListGalleryImages(ctx.Request.Context(), false)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGallery -> h.svc.ListGalleryImages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, images)
}

// HandleCreateGalleryImage godoc
// @Summary      Create a gallery image
// @Tags         admin/gallery
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateGalleryImageRequest true "request body"
// @Success      201     {object} domain.GalleryImage
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/gallery [post]
// @Security BearerAuth
func (h *SiteHandler) HandleCreateGalleryImage(ctx *gin.Context) {
	var req request.CreateGalleryImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateGalleryImage(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateGalleryImage -> h.svc.CreateGalleryImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateGalleryImage godoc
// @Summary      Update a gallery image
// @Tags         admin/gallery
// @Accept       json
// @Produce      json
// @Param        imageID path     int                               true "image ID"
// @Param        request body     request.UpdateGalleryImageRequest true "request body"
// @Success      200     {object} domain.GalleryImage
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/gallery/{imageID} [put]
// @Security BearerAuth
func (h *SiteHandler) HandleUpdateGalleryImage(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "imageID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateGalleryImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	image, err := h.svc.GetGalleryImage(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryImageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("gallery image", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateGalleryImage -> h.svc.GetGalleryImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&image)

	updated, err := h.svc.UpdateGalleryImage(ctx.Request.Context(), image)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateGalleryImage -> h.svc.UpdateGalleryImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteGalleryImage godoc
// @Summary      Delete a gallery image
// @Tags         admin/gallery
// @Produce      json
// @Param        imageID path     int true "image ID"
// @Success      200     {object} response.Message
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/gallery/{imageID} [delete]
// @Security BearerAuth
func (h *SiteHandler) HandleDeleteGalleryImage(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "imageID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteGalleryImage(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteGalleryImage -> h.svc.DeleteGalleryImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}
