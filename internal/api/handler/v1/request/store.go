package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

var storeCategories = []interface{}{
	domain.StoreCategoryRanks,
	domain.StoreCategoryItems,
	domain.StoreCategoryKeys,
	domain.StoreCategoryCosmetics,
}

type CreateStoreItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"imageUrl"`
	IsPopular   bool     `json:"isPopular"`
	IsActive    *bool    `json:"isActive"`
	Order       int      `json:"order"`
}

func (req *CreateStoreItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Price, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.In(storeCategories...)),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *CreateStoreItemRequest) ToDomain() domain.StoreItem {
	item := domain.StoreItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Features:    req.Features,
		ImageURL:    req.ImageURL,
		IsPopular:   req.IsPopular,
		IsActive:    true,
		Order:       req.Order,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	return item
}

type UpdateStoreItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	Category    *string  `json:"category"`
	Features    []string `json:"features"`
	ImageURL    *string  `json:"imageUrl"`
	IsPopular   *bool    `json:"isPopular"`
	IsActive    *bool    `json:"isActive"`
	Order       *int     `json:"order"`
}

func (req *UpdateStoreItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.In(storeCategories...)),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *UpdateStoreItemRequest) Apply(item *domain.StoreItem) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Features != nil {
		item.Features = req.Features
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsPopular != nil {
		item.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
}
