package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyblocklegends/api/internal/domain"
)

func TestCreateNewsRequest_Validate(t *testing.T) {
	valid := CreateNewsRequest{
		Title:    "Season 5 is live",
		Excerpt:  "The new season has started.",
		Content:  "Full patch notes...",
		Category: domain.NewsCategoryUpdate,
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := valid
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("unknown category", func(t *testing.T) {
		req := valid
		req.Category = "gossip"
		assert.Error(t, req.Validate())
	})
}

func TestCreateNewsRequest_ToDomain(t *testing.T) {
	req := CreateNewsRequest{
		Title:       "Season 5 is live",
		Excerpt:     "The new season has started.",
		Content:     "Full patch notes...",
		Category:    domain.NewsCategoryEvent,
		IsPublished: true,
		IsFeatured:  true,
	}

	article := req.ToDomain(9)

	assert.Equal(t, uint(9), article.AuthorID)
	assert.True(t, article.IsPublished)
	assert.True(t, article.IsFeatured)
	assert.Nil(t, article.PublishedAt, "the service owns the publish timestamp")
}

func TestUpdateNewsRequest_Apply(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	article := domain.NewsArticle{
		ID:       3,
		Title:    "Old title",
		Excerpt:  "Old excerpt",
		Content:  "Old content",
		Category: domain.NewsCategoryUpdate,
		AuthorID: 1,
	}

	req := UpdateNewsRequest{
		Title:       strPtr("New title"),
		IsPublished: boolPtr(true),
	}
	req.Apply(&article)

	assert.Equal(t, uint(3), article.ID)
	assert.Equal(t, "New title", article.Title)
	assert.Equal(t, "Old excerpt", article.Excerpt)
	assert.Equal(t, "Old content", article.Content)
	assert.Equal(t, uint(1), article.AuthorID)
	assert.True(t, article.IsPublished)
}
