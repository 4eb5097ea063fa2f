package models

type InventoryModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"uniqueIndex;size:255;not null"`
	Price     float64 `gorm:"not null"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (InventoryModel) TableName() string {
	return "inventory"
}
