package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

var newsCategories = []interface{}{
	domain.NewsCategoryUpdate,
	domain.NewsCategoryEvent,
	domain.NewsCategoryCommunity,
	domain.NewsCategoryTournament,
	domain.NewsCategoryMaintenance,
}

type CreateNewsRequest struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsPublished bool   `json:"isPublished"`
	IsFeatured  bool   `json:"isFeatured"`
}

func (req *CreateNewsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Excerpt, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.In(newsCategories...)),
	)
}

func (req *CreateNewsRequest) ToDomain(authorID uint) domain.NewsArticle {
	return domain.NewsArticle{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		AuthorID:    authorID,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	}
}

type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	IsPublished *bool   `json:"isPublished"`
	IsFeatured  *bool   `json:"isFeatured"`
}

func (req *UpdateNewsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(1, 200)),
		validation.Field(&req.Excerpt, validation.Length(1, 500)),
		validation.Field(&req.Category, validation.In(newsCategories...)),
	)
}

func (req *UpdateNewsRequest) Apply(article *domain.NewsArticle) {
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.ImageURL != nil {
		article.ImageURL = *req.ImageURL
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		article.IsFeatured = *req.IsFeatured
	}
}
