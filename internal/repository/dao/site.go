package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound   = errors.New("team member not found")
	ErrVotingSiteNotFound   = errors.New("voting site not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
)

type TeamMember struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Role        string `gorm:"not null"` // founder, admin, developer, builder, moderator or supporter
	Description string
	AvatarURL   string
	Order       int  `gorm:"column:display_order;not null;default:0"`
	IsActive    bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VotingSite struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	URL         string `gorm:"not null"`
	Description string
	Reward      string `gorm:"not null"`
	Order       int    `gorm:"column:display_order;not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GalleryImage struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	ImageURL    string `gorm:"not null"`
	Author      string
	Category    string
	Order       int  `gorm:"column:display_order;not null;default:0"`
	IsVisible   bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// SiteDAO covers the purely presentational entities: team members, voting
// sites and gallery images. They share the same list/create/update/delete
// shape, ordered by an explicit display_order column.
type SiteDAO struct {
	db *gorm.DB
}

func NewSiteDAO(db *gorm.DB) *SiteDAO {
	return &SiteDAO{
		db: db,
	}
}

func (d *SiteDAO) InsertTeamMember(ctx context.Context, member TeamMember) (TeamMember, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		return TeamMember{}, result.Error
	}

	return member, nil
}

func (d *SiteDAO) FindTeamMemberByID(ctx context.Context, id uint) (TeamMember, error) {
	var member TeamMember

	result := d.db.WithContext(ctx).First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TeamMember{}, ErrTeamMemberNotFound
		}

		return TeamMember{}, result.Error
	}

	return member, nil
}

func (d *SiteDAO) FindTeamMembers(ctx context.Context, activeOnly bool) ([]TeamMember, error) {
	var members []TeamMember

	query := d.db.WithContext(ctx).Order("display_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *SiteDAO) UpdateTeamMember(ctx context.Context, member TeamMember) (TeamMember, error) {
	result := d.db.WithContext(ctx).Save(&member)
	if result.Error != nil {
		return TeamMember{}, result.Error
	}

	return member, nil
}

func (d *SiteDAO) DeleteTeamMember(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&TeamMember{}, id).Error
}

func (d *SiteDAO) InsertVotingSite(ctx context.Context, site VotingSite) (VotingSite, error) {
	result := d.db.WithContext(ctx).Create(&site)
	if result.Error != nil {
		return VotingSite{}, result.Error
	}

	return site, nil
}

func (d *SiteDAO) FindVotingSiteByID(ctx context.Context, id uint) (VotingSite, error) {
	var site VotingSite

	result := d.db.WithContext(ctx).First(&site, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return VotingSite{}, ErrVotingSiteNotFound
		}

		return VotingSite{}, result.Error
	}

	return site, nil
}

func (d *SiteDAO) FindVotingSites(ctx context.Context, activeOnly bool) ([]VotingSite, error) {
	var sites []VotingSite

	query := d.db.WithContext(ctx).Order("display_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&sites)
	if result.Error != nil {
		return nil, result.Error
	}

	return sites, nil
}

func (d *SiteDAO) UpdateVotingSite(ctx context.Context, site VotingSite) (VotingSite, error) {
	result := d.db.WithContext(ctx).Save(&site)
	if result.Error != nil {
		return VotingSite{}, result.Error
	}

	return site, nil
}

func (d *SiteDAO) DeleteVotingSite(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&VotingSite{}, id).Error
}

func (d *SiteDAO) InsertGalleryImage(ctx context.Context, image GalleryImage) (GalleryImage, error) {
	result := d.db.WithContext(ctx).Create(&image)
	if result.Error != nil {
		return GalleryImage{}, result.Error
	}

	return image, nil
}

func (d *SiteDAO) FindGalleryImageByID(ctx context.Context, id uint) (GalleryImage, error) {
	var image GalleryImage

	result := d.db.WithContext(ctx).First(&image, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GalleryImage{}, ErrGalleryImageNotFound
		}

		return GalleryImage{}, result.Error
	}

	return image, nil
}

func (d *SiteDAO) FindGalleryImages(ctx context.Context, visibleOnly bool) ([]GalleryImage, error) {
	var images []GalleryImage

	query := d.db.WithContext(ctx).Order("display_order ASC")
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}

	result := query.Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	return images, nil
}

func (d *SiteDAO) UpdateGalleryImage(ctx context.Context, image GalleryImage) (GalleryImage, error) {
	result := d.db.WithContext(ctx).Save(&image)
	if result.Error != nil {
		return GalleryImage{}, result.Error
	}

	return image, nil
}

func (d *SiteDAO) DeleteGalleryImage(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&GalleryImage{}, id).Error
}
