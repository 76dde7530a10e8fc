package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblocklegends/api/internal/domain"
)

type fakeNewsRepository struct {
	articles map[uint]domain.NewsArticle
	nextID   uint
}

func newFakeNewsRepository() *fakeNewsRepository {
	return &fakeNewsRepository{
		articles: make(map[uint]domain.NewsArticle),
		nextID:   1,
	}
}

func (r *fakeNewsRepository) Create(_ context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	article.ID = r.nextID
	r.nextID++
	r.articles[article.ID] = article

	return article, nil
}

func (r *fakeNewsRepository) FindByID(_ context.Context, id uint) (domain.NewsArticle, error) {
	article, ok := r.articles[id]
	if !ok {
		return domain.NewsArticle{}, ErrArticleNotFound
	}

	return article, nil
}

func (r *fakeNewsRepository) FindPublished(_ context.Context, limit int) ([]domain.NewsArticle, error) {
	var published []domain.NewsArticle
	for _, article := range r.articles {
		if article.IsPublished {
			published = append(published, article)
		}
	}
	if limit > 0 && len(published) > limit {
		published = published[:limit]
	}

	return published, nil
}

func (r *fakeNewsRepository) FindFeatured(_ context.Context) ([]domain.NewsArticle, error) {
	var featured []domain.NewsArticle
	for _, article := range r.articles {
		if article.IsPublished && article.IsFeatured {
			featured = append(featured, article)
		}
	}

	return featured, nil
}

func (r *fakeNewsRepository) FindAll(_ context.Context) ([]domain.NewsArticle, error) {
	all := make([]domain.NewsArticle, 0, len(r.articles))
	for _, article := range r.articles {
		all = append(all, article)
	}

	return all, nil
}

func (r *fakeNewsRepository) Update(_ context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	if _, ok := r.articles[article.ID]; !ok {
		return domain.NewsArticle{}, ErrArticleNotFound
	}
	r.articles[article.ID] = article

	return article, nil
}

func (r *fakeNewsRepository) Delete(_ context.Context, id uint) error {
	delete(r.articles, id)

	return nil
}

func newNewsServiceAt(repo NewsRepository, now time.Time) *NewsService {
	svc := NewNewsService(repo)
	svc.now = func() time.Time { return now }

	return svc
}

func TestNewsService_CreateArticle_StampsPublishedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newNewsServiceAt(newFakeNewsRepository(), now)

	created, err := svc.CreateArticle(context.Background(), domain.NewsArticle{
		Title:       "Season 5 launch",
		IsPublished: true,
	})
	require.NoError(t, err)

	require.NotNil(t, created.PublishedAt)
	assert.Equal(t, now, *created.PublishedAt)
}

func TestNewsService_CreateArticle_DraftHasNoPublishedAt(t *testing.T) {
	svc := newNewsServiceAt(newFakeNewsRepository(), time.Now())

	created, err := svc.CreateArticle(context.Background(), domain.NewsArticle{
		Title: "Draft",
	})
	require.NoError(t, err)

	assert.Nil(t, created.PublishedAt)
}

func TestNewsService_UpdateArticle_PublishThenUnpublish(t *testing.T) {
	repo := newFakeNewsRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newNewsServiceAt(repo, now)

	created, err := svc.CreateArticle(context.Background(), domain.NewsArticle{Title: "Draft"})
	require.NoError(t, err)
	require.Nil(t, created.PublishedAt)

	created.IsPublished = true
	published, err := svc.UpdateArticle(context.Background(), created)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, now, *published.PublishedAt)

	// A second save of an already published article keeps the original stamp.
	svc.now = func() time.Time { return now.Add(time.Hour) }
	republished, err := svc.UpdateArticle(context.Background(), published)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, now, *republished.PublishedAt)

	republished.IsPublished = false
	unpublished, err := svc.UpdateArticle(context.Background(), republished)
	require.NoError(t, err)
	assert.Nil(t, unpublished.PublishedAt)
}

func TestNewsService_GetPublishedArticle_HidesDrafts(t *testing.T) {
	repo := newFakeNewsRepository()
	svc := newNewsServiceAt(repo, time.Now())

	draft, err := svc.CreateArticle(context.Background(), domain.NewsArticle{Title: "Draft"})
	require.NoError(t, err)

	_, err = svc.GetPublishedArticle(context.Background(), draft.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	draft.IsPublished = true
	published, err := svc.UpdateArticle(context.Background(), draft)
	require.NoError(t, err)

	got, err := svc.GetPublishedArticle(context.Background(), published.ID)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)
}

func TestNewsService_GetPublishedArticle_Unknown(t *testing.T) {
	svc := newNewsServiceAt(newFakeNewsRepository(), time.Now())

	_, err := svc.GetPublishedArticle(context.Background(), 999)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
