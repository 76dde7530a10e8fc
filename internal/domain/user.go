package domain

import "time"

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RolePlayer    = "player"
)

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
