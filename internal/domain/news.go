package domain

import "time"

const (
	NewsCategoryUpdate      = "update"
	NewsCategoryEvent       = "event"
	NewsCategoryCommunity   = "community"
	NewsCategoryTournament  = "tournament"
	NewsCategoryMaintenance = "maintenance"
)

type NewsArticle struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	AuthorID    uint       `json:"authorId,omitempty"`
	IsPublished bool       `json:"isPublished"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
