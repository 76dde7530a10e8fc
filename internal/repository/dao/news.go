package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("news article not found")

type NewsArticle struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Excerpt     string `gorm:"not null"`
	Content     string `gorm:"not null"`
	Category    string `gorm:"not null"` // update, event, community, tournament or maintenance
	ImageURL    string
	AuthorID    uint
	IsPublished bool `gorm:"not null;default:false"`
	IsFeatured  bool `gorm:"not null;default:false"`
	PublishedAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type NewsDAO struct {
	db *gorm.DB
}

func NewNewsDAO(db *gorm.DB) *NewsDAO {
	return &NewsDAO{
		db: db,
	}
}

func (d *NewsDAO) Insert(ctx context.Context, article NewsArticle) (NewsArticle, error) {
	result := d.db.WithContext(ctx).Create(&article)
	if result.Error != nil {
		return NewsArticle{}, result.Error
	}

	return article, nil
}

func (d *NewsDAO) FindByID(ctx context.Context, id uint) (NewsArticle, error) {
	var article NewsArticle

	result := d.db.WithContext(ctx).First(&article, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return NewsArticle{}, ErrArticleNotFound
		}

		return NewsArticle{}, result.Error
	}

	return article, nil
}

// FindPublished returns published articles, newest first. limit <= 0 means no limit.
func (d *NewsDAO) FindPublished(ctx context.Context, limit int) ([]NewsArticle, error) {
	var articles []NewsArticle

	query := d.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}

func (d *NewsDAO) FindFeatured(ctx context.Context) ([]NewsArticle, error) {
	var articles []NewsArticle

	result := d.db.WithContext(ctx).
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("published_at DESC").
		Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}

func (d *NewsDAO) FindAll(ctx context.Context) ([]NewsArticle, error) {
	var articles []NewsArticle

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}

func (d *NewsDAO) Update(ctx context.Context, article NewsArticle) (NewsArticle, error) {
	result := d.db.WithContext(ctx).Save(&article)
	if result.Error != nil {
		return NewsArticle{}, result.Error
	}

	return article, nil
}

func (d *NewsDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&NewsArticle{}, id).Error
}
