package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/skyblocklegends/api/internal/domain"
)

type CreateVotingSiteRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

func (req *CreateVotingSiteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.URL, validation.Required, is.URL),
		validation.Field(&req.Reward, validation.Required),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *CreateVotingSiteRequest) ToDomain() domain.VotingSite {
	site := domain.VotingSite{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Reward:      req.Reward,
		Order:       req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}

	return site
}

type UpdateVotingSiteRequest struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Reward      *string `json:"reward"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (req *UpdateVotingSiteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100)),
		validation.Field(&req.URL, is.URL),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *UpdateVotingSiteRequest) Apply(site *domain.VotingSite) {
	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.URL != nil {
		site.URL = *req.URL
	}
	if req.Description != nil {
		site.Description = *req.Description
	}
	if req.Reward != nil {
		site.Reward = *req.Reward
	}
	if req.Order != nil {
		site.Order = *req.Order
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}
}
