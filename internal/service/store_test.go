package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblocklegends/api/internal/domain"
)

type fakeStoreRepository struct {
	orders map[uint]domain.Order
	nextID uint
}

func newFakeStoreRepository() *fakeStoreRepository {
	return &fakeStoreRepository{
		orders: make(map[uint]domain.Order),
		nextID: 1,
	}
}

func (r *fakeStoreRepository) CreateItem(_ context.Context, item domain.StoreItem) (domain.StoreItem, error) {
	return item, nil
}

func (r *fakeStoreRepository) FindItemByID(_ context.Context, _ uint) (domain.StoreItem, error) {
	return domain.StoreItem{}, ErrStoreItemNotFound
}

func (r *fakeStoreRepository) FindItems(_ context.Context, _ bool) ([]domain.StoreItem, error) {
	return nil, nil
}

func (r *fakeStoreRepository) UpdateItem(_ context.Context, item domain.StoreItem) (domain.StoreItem, error) {
	return item, nil
}

func (r *fakeStoreRepository) DeleteItem(_ context.Context, _ uint) error {
	return nil
}

func (r *fakeStoreRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order

	return order, nil
}

func (r *fakeStoreRepository) FindOrderByID(_ context.Context, id uint) (domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}

	return order, nil
}

func (r *fakeStoreRepository) FindOrders(_ context.Context) ([]domain.Order, error) {
	all := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		all = append(all, order)
	}

	return all, nil
}

func (r *fakeStoreRepository) UpdateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	r.orders[order.ID] = order

	return order, nil
}

func (r *fakeStoreRepository) DeleteOrder(_ context.Context, id uint) error {
	delete(r.orders, id)

	return nil
}

func TestStoreService_CreateOrder_GeneratesOrderNumber(t *testing.T) {
	svc := NewStoreService(newFakeStoreRepository())

	created, err := svc.CreateOrder(context.Background(), domain.Order{
		CustomerName:  "Steve",
		CustomerEmail: "steve@example.com",
		Items:         `[{"name":"VIP Rank","quantity":1}]`,
		TotalAmount:   "9.99",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.OrderNumber, "ORD-"), "got %q", created.OrderNumber)
	assert.Len(t, created.OrderNumber, len("ORD-")+8)
	assert.Equal(t, created.OrderNumber, strings.ToUpper(created.OrderNumber))
	assert.Equal(t, domain.OrderStatusPending, created.Status)
}

func TestStoreService_CreateOrder_KeepsProvidedFields(t *testing.T) {
	svc := NewStoreService(newFakeStoreRepository())

	created, err := svc.CreateOrder(context.Background(), domain.Order{
		OrderNumber:   "ORD-CUSTOM01",
		CustomerName:  "Steve",
		CustomerEmail: "steve@example.com",
		Items:         `[]`,
		TotalAmount:   "0",
		Status:        domain.OrderStatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-CUSTOM01", created.OrderNumber)
	assert.Equal(t, domain.OrderStatusCompleted, created.Status)
}

func TestStoreService_CreateOrder_UniqueNumbers(t *testing.T) {
	svc := NewStoreService(newFakeStoreRepository())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created, err := svc.CreateOrder(context.Background(), domain.Order{
			CustomerName:  "Steve",
			CustomerEmail: "steve@example.com",
			Items:         `[]`,
			TotalAmount:   "1",
		})
		require.NoError(t, err)
		assert.False(t, seen[created.OrderNumber], "duplicate order number %q", created.OrderNumber)
		seen[created.OrderNumber] = true
	}
}
