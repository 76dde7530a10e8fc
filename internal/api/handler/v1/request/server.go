package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

type UpdateServerConfigRequest struct {
	Name        string `json:"name"`
	IP          string `json:"ip"`
	Description string `json:"description"`
	Version     string `json:"version"`
	MaxPlayers  int    `json:"maxPlayers"`
	IsOnline    bool   `json:"isOnline"`
	PlayerCount int    `json:"playerCount"`
}

func (req *UpdateServerConfigRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.IP, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.MaxPlayers, validation.Min(0)),
		validation.Field(&req.PlayerCount, validation.Min(0)),
	)
}

func (req *UpdateServerConfigRequest) ToDomain() domain.ServerConfig {
	return domain.ServerConfig{
		Name:        req.Name,
		IP:          req.IP,
		Description: req.Description,
		Version:     req.Version,
		MaxPlayers:  req.MaxPlayers,
		IsOnline:    req.IsOnline,
		PlayerCount: req.PlayerCount,
	}
}
