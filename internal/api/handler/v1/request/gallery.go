package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

type CreateGalleryImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsVisible   *bool  `json:"isVisible"`
}

func (req *CreateGalleryImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.ImageURL, validation.Required),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *CreateGalleryImageRequest) ToDomain() domain.GalleryImage {
	image := domain.GalleryImage{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Author:      req.Author,
		Category:    req.Category,
		Order:       req.Order,
		IsVisible:   true,
	}
	if req.IsVisible != nil {
		image.IsVisible = *req.IsVisible
	}

	return image
}

type UpdateGalleryImageRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Author      *string `json:"author"`
	Category    *string `json:"category"`
	Order       *int    `json:"order"`
	IsVisible   *bool   `json:"isVisible"`
}

func (req *UpdateGalleryImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(1, 200)),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *UpdateGalleryImageRequest) Apply(image *domain.GalleryImage) {
	if req.Title != nil {
		image.Title = *req.Title
	}
	if req.Description != nil {
		image.Description = *req.Description
	}
	if req.ImageURL != nil {
		image.ImageURL = *req.ImageURL
	}
	if req.Author != nil {
		image.Author = *req.Author
	}
	if req.Category != nil {
		image.Category = *req.Category
	}
	if req.Order != nil {
		image.Order = *req.Order
	}
	if req.IsVisible != nil {
		image.IsVisible = *req.IsVisible
	}
}
