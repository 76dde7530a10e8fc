package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

type CreateSeasonRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Version     string     `json:"version"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    bool       `json:"isActive"`
	Features    []string   `json:"features"`
	VideoURL    string     `json:"videoUrl"`
	ImageURL    string     `json:"imageUrl"`
}

func (req *CreateSeasonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Version, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.StartDate, validation.Required),
	)
}

func (req *CreateSeasonRequest) ToDomain() domain.Season {
	return domain.Season{
		Name:        req.Name,
		Description: req.Description,
		Version:     req.Version,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
		Features:    req.Features,
		VideoURL:    req.VideoURL,
		ImageURL:    req.ImageURL,
	}
}

type UpdateSeasonRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Version     *string    `json:"version"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    *bool      `json:"isActive"`
	Features    []string   `json:"features"`
	VideoURL    *string    `json:"videoUrl"`
	ImageURL    *string    `json:"imageUrl"`
}

func (req *UpdateSeasonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100)),
		validation.Field(&req.Version, validation.Length(1, 50)),
	)
}

func (req *UpdateSeasonRequest) Apply(season *domain.Season) {
	if req.Name != nil {
		season.Name = *req.Name
	}
	if req.Description != nil {
		season.Description = *req.Description
	}
	if req.Version != nil {
		season.Version = *req.Version
	}
	if req.StartDate != nil {
		season.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		season.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		season.IsActive = *req.IsActive
	}
	if req.Features != nil {
		season.Features = req.Features
	}
	if req.VideoURL != nil {
		season.VideoURL = *req.VideoURL
	}
	if req.ImageURL != nil {
		season.ImageURL = *req.ImageURL
	}
}
