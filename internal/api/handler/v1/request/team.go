package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

var teamRoles = []interface{}{
	domain.TeamRoleFounder,
	domain.TeamRoleAdmin,
	domain.TeamRoleDeveloper,
	domain.TeamRoleBuilder,
	domain.TeamRoleModerator,
	domain.TeamRoleSupporter,
}

type CreateTeamMemberRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

func (req *CreateTeamMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.Required, validation.In(teamRoles...)),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *CreateTeamMemberRequest) ToDomain() domain.TeamMember {
	member := domain.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
		Order:       req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	return member
}

type UpdateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Description *string `json:"description"`
	AvatarURL   *string `json:"avatarUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (req *UpdateTeamMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.In(teamRoles...)),
		validation.Field(&req.Order, validation.Min(0)),
	)
}

func (req *UpdateTeamMemberRequest) Apply(member *domain.TeamMember) {
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Description != nil {
		member.Description = *req.Description
	}
	if req.AvatarURL != nil {
		member.AvatarURL = *req.AvatarURL
	}
	if req.Order != nil {
		member.Order = *req.Order
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
}
