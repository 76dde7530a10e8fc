package request

import (
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/skyblocklegends/api/internal/domain"
)

var orderStatuses = []interface{}{
	domain.OrderStatusPending,
	domain.OrderStatusProcessing,
	domain.OrderStatusCompleted,
	domain.OrderStatusCancelled,
	domain.OrderStatusRefunded,
}

// validJSON rejects item payloads that do not parse as JSON, so broken
// encodings never reach the database.
func validJSON(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v != nil {
			s = *v
		}
	}
	if s == "" {
		return nil
	}
	if !json.Valid([]byte(s)) {
		return errors.New("must be valid JSON")
	}

	return nil
}

type CreateOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerID    string `json:"customerId"`
	Items         string `json:"items"`
	TotalAmount   string `json:"totalAmount"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	Notes         string `json:"notes"`
}

func (req *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CustomerName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CustomerEmail, validation.Required, is.Email),
		validation.Field(&req.Items, validation.Required, validation.By(validJSON)),
		validation.Field(&req.TotalAmount, validation.Required),
		validation.Field(&req.Status, validation.In(orderStatuses...)),
		validation.Field(&req.PaymentMethod, validation.Required),
		validation.Field(&req.PaymentStatus, validation.Required),
	)
}

func (req *CreateOrderRequest) ToDomain() domain.Order {
	return domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerID:    req.CustomerID,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	}
}

type UpdateOrderRequest struct {
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
	CustomerID    *string `json:"customerId"`
	Items         *string `json:"items"`
	TotalAmount   *string `json:"totalAmount"`
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
	PaymentStatus *string `json:"paymentStatus"`
	Notes         *string `json:"notes"`
}

func (req *UpdateOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CustomerName, validation.Length(1, 100)),
		validation.Field(&req.CustomerEmail, is.Email),
		validation.Field(&req.Items, validation.By(validJSON)),
		validation.Field(&req.Status, validation.In(orderStatuses...)),
	)
}

func (req *UpdateOrderRequest) Apply(order *domain.Order) {
	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		order.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerID != nil {
		order.CustomerID = *req.CustomerID
	}
	if req.Items != nil {
		order.Items = *req.Items
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
}
