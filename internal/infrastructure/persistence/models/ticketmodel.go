package models

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	VIN                string `gorm:"column:vin;size:255;not null"`
	ServiceDate        int64  `gorm:"not null"`
	ServiceDescription string `gorm:"size:1000;not null"`
	CustomerID         uint   `gorm:"not null;index"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "service_tickets"
}

// TicketMechanicModel is the ticket<->mechanic junction row. The
// composite unique index keeps a pair from being linked twice.
type TicketMechanicModel struct {
	ID         uint  `gorm:"primaryKey"`
	TicketID   uint  `gorm:"not null;uniqueIndex:idx_ticket_mechanic"`
	MechanicID uint  `gorm:"not null;uniqueIndex:idx_ticket_mechanic;index"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
}

func (TicketMechanicModel) TableName() string {
	return "ticket_mechanics"
}

// TicketInventoryModel links a ticket to an inventory item with a
// quantity. A ticket may reference a given item at most once; the
// composite unique index backs the concurrent-insert conflict handling.
type TicketInventoryModel struct {
	ID          uint  `gorm:"primaryKey"`
	TicketID    uint  `gorm:"not null;uniqueIndex:idx_ticket_inventory"`
	InventoryID uint  `gorm:"not null;uniqueIndex:idx_ticket_inventory;index"`
	Quantity    int   `gorm:"not null;default:1"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (TicketInventoryModel) TableName() string {
	return "ticket_inventories"
}
