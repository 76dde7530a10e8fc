package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
)

var ErrArticleNotFound = repository.ErrArticleNotFound

type NewsRepository interface {
	Create(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error)
	FindByID(ctx context.Context, id uint) (domain.NewsArticle, error)
	FindPublished(ctx context.Context, limit int) ([]domain.NewsArticle, error)
	FindFeatured(ctx context.Context) ([]domain.NewsArticle, error)
	FindAll(ctx context.Context) ([]domain.NewsArticle, error)
	Update(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error)
	Delete(ctx context.Context, id uint) error
}

type NewsService struct {
	repo NewsRepository
	now  func() time.Time
}

func NewNewsService(repo NewsRepository) *NewsService {
	return &NewsService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *NewsService) GetPublished(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	articles, err := s.repo.FindPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPublished -> %w", err)
	}

	return articles, nil
}

func (s *NewsService) GetFeatured(ctx context.Context) ([]domain.NewsArticle, error) {
	articles, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFeatured -> %w", err)
	}

	return articles, nil
}

func (s *NewsService) GetArticle(ctx context.Context, id uint) (domain.NewsArticle, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.NewsArticle{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return article, nil
}

// GetPublishedArticle is the public single-article read: unpublished rows
// are reported as not found.
func (s *NewsService) GetPublishedArticle(ctx context.Context, id uint) (domain.NewsArticle, error) {
	article, err := s.GetArticle(ctx, id)
	if err != nil {
		return domain.NewsArticle{}, err
	}
	if !article.IsPublished {
		return domain.NewsArticle{}, ErrArticleNotFound
	}

	return article, nil
}

func (s *NewsService) ListArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	articles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return articles, nil
}

func (s *NewsService) CreateArticle(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	s.applyPublishedAt(&article)

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		return domain.NewsArticle{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *NewsService) UpdateArticle(ctx context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	s.applyPublishedAt(&article)

	updated, err := s.repo.Update(ctx, article)
	if err != nil {
		return domain.NewsArticle{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *NewsService) DeleteArticle(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// applyPublishedAt keeps PublishedAt consistent with IsPublished: it is
// stamped the first time an article goes live and cleared on unpublish.
func (s *NewsService) applyPublishedAt(article *domain.NewsArticle) {
	if article.IsPublished {
		if article.PublishedAt == nil {
			now := s.now()
			article.PublishedAt = &now
		}
	} else {
		article.PublishedAt = nil
	}
}
