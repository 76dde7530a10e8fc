package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyblocklegends/api/internal/domain"
)

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := CreateOrderRequest{
		CustomerName:  "Steve",
		CustomerEmail: "steve@example.com",
		Items:         `[{"name":"VIP Rank","quantity":1,"price":"9.99"}]`,
		TotalAmount:   "9.99",
		PaymentMethod: "paypal",
		PaymentStatus: "paid",
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.CustomerEmail = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("items not json", func(t *testing.T) {
		req := valid
		req.Items = `[{"name": unquoted}]`
		assert.Error(t, req.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		req := valid
		req.Status = "shipped"
		assert.Error(t, req.Validate())
	})

	t.Run("known status", func(t *testing.T) {
		req := valid
		req.Status = domain.OrderStatusRefunded
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateOrderRequest_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateOrderRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("broken items rejected", func(t *testing.T) {
		req := UpdateOrderRequest{Items: strPtr(`{"unterminated":`)}
		assert.Error(t, req.Validate())
	})

	t.Run("valid items accepted", func(t *testing.T) {
		req := UpdateOrderRequest{Items: strPtr(`[]`)}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateOrderRequest_Apply(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	order := domain.Order{
		ID:          5,
		OrderNumber: "ORD-ABCD1234",
		Status:      domain.OrderStatusPending,
		TotalAmount: "9.99",
	}

	req := UpdateOrderRequest{Status: strPtr(domain.OrderStatusCompleted)}
	req.Apply(&order)

	assert.Equal(t, "ORD-ABCD1234", order.OrderNumber)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, "9.99", order.TotalAmount)
}
