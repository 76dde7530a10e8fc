package repository

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

var ErrSeasonNotFound = dao.ErrSeasonNotFound

type SeasonDAO interface {
	Insert(ctx context.Context, season dao.Season) (dao.Season, error)
	InsertDeactivatingOthers(ctx context.Context, season dao.Season) (dao.Season, error)
	FindByID(ctx context.Context, id uint) (dao.Season, error)
	FindAll(ctx context.Context) ([]dao.Season, error)
	FindActive(ctx context.Context) (dao.Season, error)
	Update(ctx context.Context, season dao.Season) (dao.Season, error)
	UpdateDeactivatingOthers(ctx context.Context, season dao.Season) (dao.Season, error)
	Delete(ctx context.Context, id uint) error
}

type SeasonRepository struct {
	dao SeasonDAO
}

func NewSeasonRepository(dao SeasonDAO) *SeasonRepository {
	return &SeasonRepository{
		dao: dao,
	}
}

func (r *SeasonRepository) Create(ctx context.Context, season domain.Season) (domain.Season, error) {
	toSave := r.domainToDAO(season)

	var (
		created dao.Season
		err     error
	)
	if season.IsActive {
		created, err = r.dao.InsertDeactivatingOthers(ctx, toSave)
	} else {
		created, err = r.dao.Insert(ctx, toSave)
	}
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SeasonRepository) FindByID(ctx context.Context, id uint) (domain.Season, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SeasonRepository) FindAll(ctx context.Context) ([]domain.Season, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	seasons := make([]domain.Season, 0, len(found))
	for _, s := range found {
		seasons = append(seasons, r.daoToDomain(s))
	}

	return seasons, nil
}

func (r *SeasonRepository) FindActive(ctx context.Context) (domain.Season, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SeasonRepository) Update(ctx context.Context, season domain.Season) (domain.Season, error) {
	toSave := r.domainToDAO(season)
	toSave.ID = season.ID
	toSave.CreatedAt = season.CreatedAt

	var (
		updated dao.Season
		err     error
	)
	if season.IsActive {
		updated, err = r.dao.UpdateDeactivatingOthers(ctx, toSave)
	} else {
		updated, err = r.dao.Update(ctx, toSave)
	}
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SeasonRepository) domainToDAO(s domain.Season) dao.Season {
	return dao.Season{
		Name:        s.Name,
		Description: s.Description,
		Version:     s.Version,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		IsActive:    s.IsActive,
		Features:    s.Features,
		VideoURL:    s.VideoURL,
		ImageURL:    s.ImageURL,
	}
}

func (r *SeasonRepository) daoToDomain(s dao.Season) domain.Season {
	return domain.Season{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Version:     s.Version,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		IsActive:    s.IsActive,
		Features:    s.Features,
		VideoURL:    s.VideoURL,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
