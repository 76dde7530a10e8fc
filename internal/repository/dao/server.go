package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrServerConfigNotFound = errors.New("server config not found")

// ServerConfig is stored as a single row with ID 1.
type ServerConfig struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	IP          string `gorm:"not null"`
	Description string
	Version     string
	MaxPlayers  int  `gorm:"not null;default:0"`
	IsOnline    bool `gorm:"not null;default:false"`
	PlayerCount int  `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ServerConfigDAO struct {
	db *gorm.DB
}

func NewServerConfigDAO(db *gorm.DB) *ServerConfigDAO {
	return &ServerConfigDAO{
		db: db,
	}
}

func (d *ServerConfigDAO) Find(ctx context.Context) (ServerConfig, error) {
	var conf ServerConfig

	result := d.db.WithContext(ctx).First(&conf, 1)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ServerConfig{}, ErrServerConfigNotFound
		}

		return ServerConfig{}, result.Error
	}

	return conf, nil
}

func (d *ServerConfigDAO) Upsert(ctx context.Context, conf ServerConfig) (ServerConfig, error) {
	conf.ID = 1

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "ip", "description", "version", "max_players", "is_online", "player_count", "updated_at",
		}),
	}).Create(&conf)
	if result.Error != nil {
		return ServerConfig{}, result.Error
	}

	return conf, nil
}
