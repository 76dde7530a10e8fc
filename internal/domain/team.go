package domain

import "time"

const (
	TeamRoleFounder   = "founder"
	TeamRoleAdmin     = "admin"
	TeamRoleDeveloper = "developer"
	TeamRoleBuilder   = "builder"
	TeamRoleModerator = "moderator"
	TeamRoleSupporter = "supporter"
)

type TeamMember struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Description string    `json:"description,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
