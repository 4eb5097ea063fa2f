package models

type CustomerModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Phone        string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CustomerModel) TableName() string {
	return "customers"
}
