package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblocklegends/api/internal/api/middleware"
	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/pkg/jwthelper"
	"github.com/skyblocklegends/api/internal/service"
)

type stubNewsService struct {
	articles []domain.NewsArticle
	article  domain.NewsArticle
	err      error

	created domain.NewsArticle
	updated domain.NewsArticle
}

func (s *stubNewsService) GetPublished(_ context.Context, _ int) ([]domain.NewsArticle, error) {
	return s.articles, s.err
}

func (s *stubNewsService) GetFeatured(_ context.Context) ([]domain.NewsArticle, error) {
	return s.articles, s.err
}

func (s *stubNewsService) GetArticle(_ context.Context, _ uint) (domain.NewsArticle, error) {
	return s.article, s.err
}

func (s *stubNewsService) GetPublishedArticle(_ context.Context, _ uint) (domain.NewsArticle, error) {
	return s.article, s.err
}

func (s *stubNewsService) ListArticles(_ context.Context) ([]domain.NewsArticle, error) {
	return s.articles, s.err
}

func (s *stubNewsService) CreateArticle(_ context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	s.created = article
	article.ID = 1

	return article, s.err
}

func (s *stubNewsService) UpdateArticle(_ context.Context, article domain.NewsArticle) (domain.NewsArticle, error) {
	s.updated = article

	return article, s.err
}

func (s *stubNewsService) DeleteArticle(_ context.Context, _ uint) error {
	return s.err
}

// fakeClaims injects decoded claims the way VerifyJWT would.
func fakeClaims(userID uint, role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ClaimsContextKey, jwthelper.UserClaims{
			UserID:   userID,
			Username: "steve",
			Role:     role,
		})
		ctx.Next()
	}
}

func newNewsRouter(svc NewsService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewNewsHandler(svc)
	router := gin.New()
	router.GET("/news", handler.HandleGetNews)
	router.GET("/news/:articleID", handler.HandleGetArticle)
	router.POST("/admin/news", fakeClaims(7, domain.RoleAdmin), handler.HandleCreateArticle)
	router.PUT("/admin/news/:articleID", fakeClaims(7, domain.RoleAdmin), handler.HandleUpdateArticle)
	router.DELETE("/admin/news/:articleID", fakeClaims(7, domain.RoleAdmin), handler.HandleDeleteArticle)

	return router
}

func TestHandleGetNews_EmptyList(t *testing.T) {
	router := newNewsRouter(&stubNewsService{articles: []domain.NewsArticle{}})

	req, err := http.NewRequest(http.MethodGet, "/news", nil)
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
}

func TestHandleGetArticle_NotFound(t *testing.T) {
	router := newNewsRouter(&stubNewsService{err: service.ErrArticleNotFound})

	req, err := http.NewRequest(http.MethodGet, "/news/42", nil)
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleGetArticle_BadID(t *testing.T) {
	router := newNewsRouter(&stubNewsService{})

	req, err := http.NewRequest(http.MethodGet, "/news/banana", nil)
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleCreateArticle(t *testing.T) {
	svc := &stubNewsService{}
	router := newNewsRouter(svc)

	body := `{
		"title": "Season 5 is live",
		"excerpt": "The new season has started.",
		"content": "Full patch notes...",
		"category": "update",
		"isPublished": true
	}`
	req, err := http.NewRequest(http.MethodPost, "/admin/news", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	// The author comes from the token, not the payload.
	assert.Equal(t, uint(7), svc.created.AuthorID)

	var created domain.NewsArticle
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Season 5 is live", created.Title)
	assert.Equal(t, uint(1), created.ID)
}

func TestHandleCreateArticle_InvalidCategory(t *testing.T) {
	router := newNewsRouter(&stubNewsService{})

	body := `{
		"title": "Season 5 is live",
		"excerpt": "The new season has started.",
		"content": "Full patch notes...",
		"category": "gossip"
	}`
	req, err := http.NewRequest(http.MethodPost, "/admin/news", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleUpdateArticle_PartialPayload(t *testing.T) {
	svc := &stubNewsService{
		article: domain.NewsArticle{
			ID:       3,
			Title:    "Old title",
			Excerpt:  "Old excerpt",
			Content:  "Old content",
			Category: domain.NewsCategoryUpdate,
			AuthorID: 2,
		},
	}
	router := newNewsRouter(svc)

	req, err := http.NewRequest(http.MethodPut, "/admin/news/3", strings.NewReader(`{"title":"New title"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "New title", svc.updated.Title)
	assert.Equal(t, "Old excerpt", svc.updated.Excerpt, "omitted fields keep stored values")
	assert.Equal(t, uint(2), svc.updated.AuthorID)
}

func TestHandleDeleteArticle(t *testing.T) {
	router := newNewsRouter(&stubNewsService{})

	req, err := http.NewRequest(http.MethodDelete, "/admin/news/3", nil)
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"deleted"}`, resp.Body.String())
}
