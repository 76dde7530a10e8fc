package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
)

var ErrServerConfigNotFound = repository.ErrServerConfigNotFound

type ServerConfigRepository interface {
	Find(ctx context.Context) (domain.ServerConfig, error)
	Upsert(ctx context.Context, conf domain.ServerConfig) (domain.ServerConfig, error)
}

type ServerService struct {
	repo ServerConfigRepository
}

func NewServerService(repo ServerConfigRepository) *ServerService {
	return &ServerService{
		repo: repo,
	}
}

// GetStatus returns the stored server config, or the built-in default when
// nothing has been configured yet. The public status endpoint never 404s.
func (s *ServerService) GetStatus(ctx context.Context) (domain.ServerConfig, error) {
	conf, err := s.repo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrServerConfigNotFound) {
			return domain.DefaultServerConfig(), nil
		}

		return domain.ServerConfig{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return conf, nil
}

func (s *ServerService) GetConfig(ctx context.Context) (domain.ServerConfig, error) {
	conf, err := s.repo.Find(ctx)
	if err != nil {
		return domain.ServerConfig{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return conf, nil
}

func (s *ServerService) UpdateConfig(ctx context.Context, conf domain.ServerConfig) (domain.ServerConfig, error) {
	saved, err := s.repo.Upsert(ctx, conf)
	if err != nil {
		return domain.ServerConfig{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return saved, nil
}
