package ticket

import "context"

// AssignedMechanic is the trimmed mechanic representation embedded in
// ticket responses: id and name only, without salary or contact fields.
type AssignedMechanic struct {
	ID   uint
	Name string
}

// InventoryLine is one part attached to a ticket with its quantity.
type InventoryLine struct {
	InventoryID uint
	Quantity    int
}

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]*Ticket, error)

	// Mechanic associations. Pairs are unique; AssignMechanic must not
	// be called for an already linked pair.
	MechanicIDs(ctx context.Context, ticketID uint) ([]uint, error)
	ListMechanics(ctx context.Context, ticketID uint) ([]AssignedMechanic, error)
	AssignMechanic(ctx context.Context, ticketID, mechanicID uint) error
	RemoveMechanic(ctx context.Context, ticketID, mechanicID uint) error

	// Inventory associations. LinkedInventoryIDs returns the subset of
	// inventoryIDs already attached to the ticket. AddInventoryLines
	// inserts one row per line; a duplicate pair surfaces as a database
	// uniqueness error.
	LinkedInventoryIDs(ctx context.Context, ticketID uint, inventoryIDs []uint) ([]uint, error)
	AddInventoryLines(ctx context.Context, ticketID uint, lines []InventoryLine) error
	ListInventoryLines(ctx context.Context, ticketID uint) ([]InventoryLine, error)
}
