package service

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
)

var ErrSeasonNotFound = repository.ErrSeasonNotFound

type SeasonRepository interface {
	Create(ctx context.Context, season domain.Season) (domain.Season, error)
	FindByID(ctx context.Context, id uint) (domain.Season, error)
	FindAll(ctx context.Context) ([]domain.Season, error)
	FindActive(ctx context.Context) (domain.Season, error)
	Update(ctx context.Context, season domain.Season) (domain.Season, error)
	Delete(ctx context.Context, id uint) error
}

type SeasonService struct {
	repo SeasonRepository
}

func NewSeasonService(repo SeasonRepository) *SeasonService {
	return &SeasonService{
		repo: repo,
	}
}

func (s *SeasonService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	seasons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return seasons, nil
}

func (s *SeasonService) GetCurrentSeason(ctx context.Context) (domain.Season, error) {
	season, err := s.repo.FindActive(ctx)
	if err != nil {
		return domain.Season{}, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return season, nil
}

func (s *SeasonService) GetSeason(ctx context.Context, id uint) (domain.Season, error) {
	season, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Season{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return season, nil
}

// CreateSeason stores a season. Activating one deactivates every other
// season inside the repository transaction, so a single season is current
// at any time.
func (s *SeasonService) CreateSeason(ctx context.Context, season domain.Season) (domain.Season, error) {
	created, err := s.repo.Create(ctx, season)
	if err != nil {
		return domain.Season{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SeasonService) UpdateSeason(ctx context.Context, season domain.Season) (domain.Season, error) {
	updated, err := s.repo.Update(ctx, season)
	if err != nil {
		return domain.Season{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SeasonService) DeleteSeason(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
