package domain

import "time"

const (
	StoreCategoryRanks     = "ranks"
	StoreCategoryItems     = "items"
	StoreCategoryKeys      = "keys"
	StoreCategoryCosmetics = "cosmetics"
)

type StoreItem struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"` // formatted, e.g. "9.99€"
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsPopular   bool      `json:"isPopular"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
