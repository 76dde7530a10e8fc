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

type StoreService interface {
	ListItems(ctx context.Context, activeOnly bool) ([]domain.StoreItem, error)
	GetItem(ctx context.Context, id uint) (domain.StoreItem, error)
	CreateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error)
	UpdateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error)
	DeleteItem(ctx context.Context, id uint) error

	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id uint) (domain.Order, error)
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type StoreHandler struct {
	svc StoreService
}

func NewStoreHandler(svc StoreService) *StoreHandler {
	return &StoreHandler{
		svc: svc,
	}
}

// HandleGetStoreItems godoc
// @Summary      Get active store items
// @Tags         store
// @Produce      json
// @Success      200 {array}  domain.StoreItem
// @Failure      500 {object} response.Err
// @Router       /store/items [get]
func (h *StoreHandler) HandleGetStoreItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context(), true)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStoreItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleListStoreItems godoc
// @Summary      List all store items
// @Tags         admin/store
// @Produce      json
// @Success      200 {array}  domain.StoreItem
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/store/items [get]
// @Security BearerAuth
func (h *StoreHandler) HandleListStoreItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context(), false)
	if err != nil {
		err = fmt.Errorf("v1.HandleListStoreItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleCreateStoreItem godoc
// @Summary      Create a store item
// @Tags         admin/store
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateStoreItemRequest true "request body"
// @Success      201     {object} domain.StoreItem
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/store/items [post]
// @Security BearerAuth
func (h *StoreHandler) HandleCreateStoreItem(ctx *gin.Context) {
	var req request.CreateStoreItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStoreItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateStoreItem godoc
// @Summary      Update a store item
// @Tags         admin/store
// @Accept       json
// @Produce      json
// @Param        itemID  path     int                            true "item ID"
// @Param        request body     request.UpdateStoreItemRequest true "request body"
// @Success      200     {object} domain.StoreItem
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/store/items/{itemID} [put]
// @Security BearerAuth
func (h *StoreHandler) HandleUpdateStoreItem(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "itemID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateStoreItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStoreItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store item", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStoreItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&item)

	updated, err := h.svc.UpdateItem(ctx.Request.Context(), item)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateStoreItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteStoreItem godoc
// @Summary      Delete a store item
// @Tags         admin/store
// @Produce      json
// @Param        itemID path     int true "item ID"
// @Success      200    {object} response.Message
// @Failure      400    {object} response.Err
// @Failure      401    {object} response.Err
// @Failure      403    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /admin/store/items/{itemID} [delete]
// @Security BearerAuth
func (h *StoreHandler) HandleDeleteStoreItem(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "itemID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteItem(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteStoreItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}

// HandleListOrders godoc
// @Summary      List all orders, newest first
// @Tags         admin/orders
// @Produce      json
// @Success      200 {array}  domain.Order
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/orders [get]
// @Security BearerAuth
func (h *StoreHandler) HandleListOrders(ctx *gin.Context) {
	orders, err := h.svc.ListOrders(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleCreateOrder godoc
// @Summary      Create an order
// @Description  Generates an order number and defaults the status to pending when omitted.
// @Tags         admin/orders
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateOrderRequest true "request body"
// @Success      201     {object} domain.Order
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/orders [post]
// @Security BearerAuth
func (h *StoreHandler) HandleCreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateOrder(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateOrder -> h.svc.CreateOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateOrder godoc
// @Summary      Update an order
// @Tags         admin/orders
// @Accept       json
// @Produce      json
// @Param        orderID path     int                        true "order ID"
// @Param        request body     request.UpdateOrderRequest true "request body"
// @Success      200     {object} domain.Order
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/orders/{orderID} [put]
// @Security BearerAuth
func (h *StoreHandler) HandleUpdateOrder(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "orderID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("order", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateOrder -> h.svc.GetOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	req.Apply(&order)

	updated, err := h.svc.UpdateOrder(ctx.Request.Context(), order)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateOrder -> h.svc.UpdateOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteOrder godoc
// @Summary      Delete an order
// @Tags         admin/orders
// @Produce      json
// @Param        orderID path     int true "order ID"
// @Success      200     {object} response.Message
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /admin/orders/{orderID} [delete]
// @Security BearerAuth
func (h *StoreHandler) HandleDeleteOrder(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "orderID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteOrder(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteOrder -> h.svc.DeleteOrder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Deleted())
}
