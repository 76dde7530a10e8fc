package repository

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

var (
	ErrStoreItemNotFound = dao.ErrStoreItemNotFound
	ErrOrderNotFound     = dao.ErrOrderNotFound
)

type StoreDAO interface {
	InsertItem(ctx context.Context, item dao.StoreItem) (dao.StoreItem, error)
	FindItemByID(ctx context.Context, id uint) (dao.StoreItem, error)
	FindItems(ctx context.Context, activeOnly bool) ([]dao.StoreItem, error)
	UpdateItem(ctx context.Context, item dao.StoreItem) (dao.StoreItem, error)
	DeleteItem(ctx context.Context, id uint) error

	InsertOrder(ctx context.Context, order dao.Order) (dao.Order, error)
	FindOrderByID(ctx context.Context, id uint) (dao.Order, error)
	FindOrders(ctx context.Context) ([]dao.Order, error)
	UpdateOrder(ctx context.Context, order dao.Order) (dao.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type StoreRepository struct {
	dao StoreDAO
}

func NewStoreRepository(dao StoreDAO) *StoreRepository {
	return &StoreRepository{
		dao: dao,
	}
}

func (r *StoreRepository) CreateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error) {
	created, err := r.dao.InsertItem(ctx, r.itemToDAO(item))
	if err != nil {
		return domain.StoreItem{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	return r.itemToDomain(created), nil
}

func (r *StoreRepository) FindItemByID(ctx context.Context, id uint) (domain.StoreItem, error) {
	found, err := r.dao.FindItemByID(ctx, id)
	if err != nil {
		return domain.StoreItem{}, fmt.Errorf("r.dao.FindItemByID -> %w", err)
	}

	return r.itemToDomain(found), nil
}

func (r *StoreRepository) FindItems(ctx context.Context, activeOnly bool) ([]domain.StoreItem, error) {
	found, err := r.dao.FindItems(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindItems -> %w", err)
	}

	items := make([]domain.StoreItem, 0, len(found))
	for _, item := range found {
		items = append(items, r.itemToDomain(item))
	}

	return items, nil
}

func (r *StoreRepository) UpdateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error) {
	toSave := r.itemToDAO(item)
	toSave.ID = item.ID
	toSave.CreatedAt = item.CreatedAt

	updated, err := r.dao.UpdateItem(ctx, toSave)
	if err != nil {
		return domain.StoreItem{}, fmt.Errorf("r.dao.UpdateItem -> %w", err)
	}

	return r.itemToDomain(updated), nil
}

func (r *StoreRepository) DeleteItem(ctx context.Context, id uint) error {
	if err := r.dao.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteItem -> %w", err)
	}

	return nil
}

func (r *StoreRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := r.dao.InsertOrder(ctx, r.orderToDAO(order))
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.InsertOrder -> %w", err)
	}

	return r.orderToDomain(created), nil
}

func (r *StoreRepository) FindOrderByID(ctx context.Context, id uint) (domain.Order, error) {
	found, err := r.dao.FindOrderByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindOrderByID -> %w", err)
	}

	return r.orderToDomain(found), nil
}

func (r *StoreRepository) FindOrders(ctx context.Context) ([]domain.Order, error) {
	found, err := r.dao.FindOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOrders -> %w", err)
	}

	orders := make([]domain.Order, 0, len(found))
	for _, o := range found {
		orders = append(orders, r.orderToDomain(o))
	}

	return orders, nil
}

func (r *StoreRepository) UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	toSave := r.orderToDAO(order)
	toSave.ID = order.ID
	toSave.CreatedAt = order.CreatedAt

	updated, err := r.dao.UpdateOrder(ctx, toSave)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.UpdateOrder -> %w", err)
	}

	return r.orderToDomain(updated), nil
}

func (r *StoreRepository) DeleteOrder(ctx context.Context, id uint) error {
	if err := r.dao.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteOrder -> %w", err)
	}

	return nil
}

func (r *StoreRepository) itemToDAO(item domain.StoreItem) dao.StoreItem {
	return dao.StoreItem{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Features:    item.Features,
		ImageURL:    item.ImageURL,
		IsPopular:   item.IsPopular,
		IsActive:    item.IsActive,
		Order:       item.Order,
	}
}

func (r *StoreRepository) itemToDomain(item dao.StoreItem) domain.StoreItem {
	return domain.StoreItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Features:    item.Features,
		ImageURL:    item.ImageURL,
		IsPopular:   item.IsPopular,
		IsActive:    item.IsActive,
		Order:       item.Order,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *StoreRepository) orderToDAO(o domain.Order) dao.Order {
	return dao.Order{
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerID:    o.CustomerID,
		Items:         o.Items,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Notes:         o.Notes,
	}
}

func (r *StoreRepository) orderToDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerID:    o.CustomerID,
		Items:         o.Items,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
