package repository

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

var ErrServerConfigNotFound = dao.ErrServerConfigNotFound

type ServerConfigDAO interface {
	Find(ctx context.Context) (dao.ServerConfig, error)
	Upsert(ctx context.Context, conf dao.ServerConfig) (dao.ServerConfig, error)
}

type ServerConfigRepository struct {
	dao ServerConfigDAO
}

func NewServerConfigRepository(dao ServerConfigDAO) *ServerConfigRepository {
	return &ServerConfigRepository{
		dao: dao,
	}
}

func (r *ServerConfigRepository) Find(ctx context.Context) (domain.ServerConfig, error) {
	found, err := r.dao.Find(ctx)
	if err != nil {
		return domain.ServerConfig{}, fmt.Errorf("r.dao.Find -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ServerConfigRepository) Upsert(ctx context.Context, conf domain.ServerConfig) (domain.ServerConfig, error) {
	saved, err := r.dao.Upsert(ctx, dao.ServerConfig{
		Name:        conf.Name,
		IP:          conf.IP,
		Description: conf.Description,
		Version:     conf.Version,
		MaxPlayers:  conf.MaxPlayers,
		IsOnline:    conf.IsOnline,
		PlayerCount: conf.PlayerCount,
	})
	if err != nil {
		return domain.ServerConfig{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *ServerConfigRepository) daoToDomain(c dao.ServerConfig) domain.ServerConfig {
	return domain.ServerConfig{
		ID:          c.ID,
		Name:        c.Name,
		IP:          c.IP,
		Description: c.Description,
		Version:     c.Version,
		MaxPlayers:  c.MaxPlayers,
		IsOnline:    c.IsOnline,
		PlayerCount: c.PlayerCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
