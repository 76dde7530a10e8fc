package repository

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

var ErrArticleNotFound = dao.ErrArticleNotFound

type NewsDAO interface {
	Insert(ctx context.Context, article dao.NewsArticle) (dao.NewsArticle, error)
	FindByID(ctx context.Context, id uint) (dao.NewsArticle, error)
	FindPublished(ctx context.Context, limit int) ([]dao.NewsArticle, error)
	FindFeatured(ctx context.Context) ([]dao.NewsArticle, error)
	FindAll(ctx context.Context) ([]dao.NewsArticle, error)
	Update(ctx context.Context, article dao.NewsArticle) (dao.NewsArticle, error)
	Delete(ctx context.Context, id uint) error
}

type NewsRepository struct {
	dao NewsDAO
}

func NewNewsRepository(dao NewsDAO) *NewsRepository {
	return &NewsRepository{
		dao: dao,
	}
}

func (r *NewsRepository) Create(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(article))
	if err != nil {
		return domain.NewsArticle{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id uint) (domain.NewsArticle, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.NewsArticle{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *NewsRepository) FindPublished(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	found, err := r.dao.FindPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPublished -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *NewsRepository) FindFeatured(ctx context.Context) ([]domain.NewsArticle, error) {
	found, err := r.dao.FindFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFeatured -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *NewsRepository) FindAll(ctx context.Context) ([]domain.NewsArticle, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *NewsRepository) Update(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	toSave := r.domainToDAO(article)
	toSave.ID = article.ID
	toSave.CreatedAt = article.CreatedAt

	updated, err := r.dao.Update(ctx, toSave)
	if err != nil {
		return domain.NewsArticle{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *NewsRepository) domainToDAO(a domain.NewsArticle) dao.NewsArticle {
	return dao.NewsArticle{
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    a.Category,
		ImageURL:    a.ImageURL,
		AuthorID:    a.AuthorID,
		IsPublished: a.IsPublished,
		IsFeatured:  a.IsFeatured,
		PublishedAt: a.PublishedAt,
	}
}

func (r *NewsRepository) daoToDomain(a dao.NewsArticle) domain.NewsArticle {
	return domain.NewsArticle{
		ID:          a.ID,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    a.Category,
		ImageURL:    a.ImageURL,
		AuthorID:    a.AuthorID,
		IsPublished: a.IsPublished,
		IsFeatured:  a.IsFeatured,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *NewsRepository) daoToDomainAll(articles []dao.NewsArticle) []domain.NewsArticle {
	converted := make([]domain.NewsArticle, 0, len(articles))
	for _, a := range articles {
		converted = append(converted, r.daoToDomain(a))
	}

	return converted
}
