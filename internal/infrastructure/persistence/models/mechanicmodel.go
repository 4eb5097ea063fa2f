package models

type MechanicModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;not null"`
	Email     string  `gorm:"uniqueIndex;size:360;not null"`
	Phone     string  `gorm:"size:255;not null"`
	Salary    float64 `gorm:"not null"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (MechanicModel) TableName() string {
	return "mechanics"
}
