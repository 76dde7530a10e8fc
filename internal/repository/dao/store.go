package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrStoreItemNotFound = errors.New("store item not found")
	ErrOrderNotFound     = errors.New("order not found")
)

type StoreItem struct {
	ID uint `gorm:"primaryKey"`

	Name        string   `gorm:"not null"`
	Description string   `gorm:"not null"`
	Price       string   `gorm:"not null"`
	Category    string   `gorm:"not null"` // ranks, items, keys or cosmetics
	Features    []string `gorm:"serializer:json"`
	ImageURL    string
	IsPopular   bool `gorm:"not null;default:false"`
	IsActive    bool `gorm:"not null;default:true"`
	Order       int  `gorm:"column:display_order;not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Order struct {
	ID uint `gorm:"primaryKey"`

	OrderNumber   string `gorm:"unique;not null"`
	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null"`
	CustomerID    string
	Items         string `gorm:"not null"` // JSON-encoded list
	TotalAmount   string `gorm:"not null"`
	Status        string `gorm:"not null;default:pending"` // pending, processing, completed, cancelled or refunded
	PaymentMethod string `gorm:"not null"`
	PaymentStatus string `gorm:"not null"`
	Notes         string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StoreDAO struct {
	db *gorm.DB
}

func NewStoreDAO(db *gorm.DB) *StoreDAO {
	return &StoreDAO{
		db: db,
	}
}

func (d *StoreDAO) InsertItem(ctx context.Context, item StoreItem) (StoreItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return StoreItem{}, result.Error
	}

	return item, nil
}

func (d *StoreDAO) FindItemByID(ctx context.Context, id uint) (StoreItem, error) {
	var item StoreItem

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StoreItem{}, ErrStoreItemNotFound
		}

		return StoreItem{}, result.Error
	}

	return item, nil
}

func (d *StoreDAO) FindItems(ctx context.Context, activeOnly bool) ([]StoreItem, error) {
	var items []StoreItem

	query := d.db.WithContext(ctx).Order("display_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	result := query.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *StoreDAO) UpdateItem(ctx context.Context, item StoreItem) (StoreItem, error) {
	result := d.db.WithContext(ctx).Save(&item)
	if result.Error != nil {
		return StoreItem{}, result.Error
	}

	return item, nil
}

func (d *StoreDAO) DeleteItem(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&StoreItem{}, id).Error
}

func (d *StoreDAO) InsertOrder(ctx context.Context, order Order) (Order, error) {
	result := d.db.WithContext(ctx).Create(&order)
	if result.Error != nil {
		return Order{}, result.Error
	}

	return order, nil
}

func (d *StoreDAO) FindOrderByID(ctx context.Context, id uint) (Order, error) {
	var order Order

	result := d.db.WithContext(ctx).First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

func (d *StoreDAO) FindOrders(ctx context.Context) ([]Order, error) {
	var orders []Order

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *StoreDAO) UpdateOrder(ctx context.Context, order Order) (Order, error) {
	result := d.db.WithContext(ctx).Save(&order)
	if result.Error != nil {
		return Order{}, result.Error
	}

	return order, nil
}

func (d *StoreDAO) DeleteOrder(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Order{}, id).Error
}
