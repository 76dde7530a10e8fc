package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSeasonNotFound = errors.New("season not found")

type Season struct {
	ID uint `gorm:"primaryKey"`

	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Version     string    `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     *time.Time
	IsActive    bool     `gorm:"not null;default:false"`
	Features    []string `gorm:"serializer:json"`
	VideoURL    string
	ImageURL    string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SeasonDAO struct {
	db *gorm.DB
}

func NewSeasonDAO(db *gorm.DB) *SeasonDAO {
	return &SeasonDAO{
		db: db,
	}
}

func (d *SeasonDAO) Insert(ctx context.Context, season Season) (Season, error) {
	result := d.db.WithContext(ctx).Create(&season)
	if result.Error != nil {
		return Season{}, result.Error
	}

	return season, nil
}

func (d *SeasonDAO) FindByID(ctx context.Context, id uint) (Season, error) {
	var season Season

	result := d.db.WithContext(ctx).First(&season, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Season{}, ErrSeasonNotFound
		}

		return Season{}, result.Error
	}

	return season, nil
}

func (d *SeasonDAO) FindAll(ctx context.Context) ([]Season, error) {
	var seasons []Season

	result := d.db.WithContext(ctx).Order("start_date DESC").Find(&seasons)
	if result.Error != nil {
		return nil, result.Error
	}

	return seasons, nil
}

func (d *SeasonDAO) FindActive(ctx context.Context) (Season, error) {
	var season Season

	result := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date DESC").
		First(&season)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Season{}, ErrSeasonNotFound
		}

		return Season{}, result.Error
	}

	return season, nil
}

func (d *SeasonDAO) Update(ctx context.Context, season Season) (Season, error) {
	result := d.db.WithContext(ctx).Save(&season)
	if result.Error != nil {
		return Season{}, result.Error
	}

	return season, nil
}

// UpdateDeactivatingOthers saves the season with is_active set and clears the
// flag on every other season in the same transaction, so at most one season
// is ever active.
func (d *SeasonDAO) UpdateDeactivatingOthers(ctx context.Context, season Season) (Season, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Season{}).
			Where("id <> ?", season.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Save(&season).Error
	})
	if err != nil {
		return Season{}, err
	}

	return season, nil
}

// InsertDeactivatingOthers is the insert counterpart of UpdateDeactivatingOthers.
func (d *SeasonDAO) InsertDeactivatingOthers(ctx context.Context, season Season) (Season, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Season{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Create(&season).Error
	})
	if err != nil {
		return Season{}, err
	}

	return season, nil
}

func (d *SeasonDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Season{}, id).Error
}
