package domain

import "time"

// ServerConfig is the singleton describing the Minecraft server itself.
type ServerConfig struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	IP          string    `json:"ip"`
	Description string    `json:"description"`
	Version     string    `json:"version"`
	MaxPlayers  int       `json:"maxPlayers"`
	IsOnline    bool      `json:"isOnline"`
	PlayerCount int       `json:"playerCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefaultServerConfig is returned by the public status endpoint before an
// admin has saved any configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:        "SkyBlock Legends",
		IP:          "play.skyblocklegends.net",
		Description: "The ultimate SkyBlock experience",
		Version:     "1.20.x",
		MaxPlayers:  500,
		IsOnline:    false,
		PlayerCount: 0,
	}
}
