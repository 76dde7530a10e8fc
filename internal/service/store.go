package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
)

var (
	ErrStoreItemNotFound = repository.ErrStoreItemNotFound
	ErrOrderNotFound     = repository.ErrOrderNotFound
)

type StoreRepository interface {
	CreateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error)
	FindItemByID(ctx context.Context, id uint) (domain.StoreItem, error)
	FindItems(ctx context.Context, activeOnly bool) ([]domain.StoreItem, error)
	UpdateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error)
	DeleteItem(ctx context.Context, id uint) error

	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderByID(ctx context.Context, id uint) (domain.Order, error)
	FindOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type StoreService struct {
	repo StoreRepository
}

func NewStoreService(repo StoreRepository) *StoreService {
	return &StoreService{
		repo: repo,
	}
}

func (s *StoreService) ListItems(ctx context.Context, activeOnly bool) ([]domain.StoreItem, error) {
	items, err := s.repo.FindItems(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindItems -> %w", err)
	}

	return items, nil
}

func (s *StoreService) GetItem(ctx context.Context, id uint) (domain.StoreItem, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return domain.StoreItem{}, fmt.Errorf("s.repo.FindItemByID -> %w", err)
	}

	return item, nil
}

func (s *StoreService) CreateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error) {
	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return domain.StoreItem{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
	}

	return created, nil
}

func (s *StoreService) UpdateItem(ctx context.Context, item domain.StoreItem) (domain.StoreItem, error) {
	updated, err := s.repo.UpdateItem(ctx, item)
	if err != nil {
		return domain.StoreItem{}, fmt.Errorf("s.repo.UpdateItem -> %w", err)
	}

	return updated, nil
}

func (s *StoreService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteItem -> %w", err)
	}

	return nil
}

func (s *StoreService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOrders -> %w", err)
	}

	return orders, nil
}

func (s *StoreService) GetOrder(ctx context.Context, id uint) (domain.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindOrderByID -> %w", err)
	}

	return order, nil
}

func (s *StoreService) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.CreateOrder -> %w", err)
	}

	return created, nil
}

func (s *StoreService) UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.UpdateOrder -> %w", err)
	}

	return updated, nil
}

func (s *StoreService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteOrder -> %w", err)
	}

	return nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
