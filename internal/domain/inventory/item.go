package inventory

import (
	"fmt"
	"time"
)

// Item is a stock part that can be attached to service tickets.
type Item struct {
	id        uint
	name      string
	price     float64
	createdAt time.Time
	updatedAt time.Time
}

func NewItem(name string, price float64) (*Item, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now()
	return &Item{
		name:      name,
		price:     price,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(id uint, name string, price float64, createdAt, updatedAt time.Time) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Item{
		id:        id,
		name:      name,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() float64 {
	return i.price
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Item) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	i.name = name
	i.updatedAt = time.Now()
	return nil
}

func (i *Item) ChangePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	i.price = price
	i.updatedAt = time.Now()
	return nil
}
