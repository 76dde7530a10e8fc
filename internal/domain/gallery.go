package domain

import "time"

type GalleryImage struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Order       int       `json:"order"`
	IsVisible   bool      `json:"isVisible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
