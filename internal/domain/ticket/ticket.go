package ticket

import (
	"fmt"
	"time"
)

// Ticket is a service work order tied to one customer. Mechanic and
// inventory associations are managed through the repository, not held
// on the entity.
type Ticket struct {
	id                 uint
	vin                string
	serviceDate        time.Time
	serviceDescription string
	customerID         uint
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTicket(vin string, serviceDate time.Time, serviceDescription string, customerID uint) (*Ticket, error) {
	if len(vin) == 0 {
		return nil, fmt.Errorf("VIN is required")
	}
	if len(vin) > 255 {
		return nil, fmt.Errorf("VIN exceeds maximum length of 255 characters")
	}
	if serviceDate.IsZero() {
		return nil, fmt.Errorf("service date is required")
	}
	if len(serviceDescription) == 0 {
		return nil, fmt.Errorf("service description is required")
	}
	if len(serviceDescription) > 1000 {
		return nil, fmt.Errorf("service description exceeds maximum length of 1000 characters")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	now := time.Now()
	return &Ticket{
		vin:                vin,
		serviceDate:        serviceDate,
		serviceDescription: serviceDescription,
		customerID:         customerID,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructTicket(
	id uint,
	vin string,
	serviceDate time.Time,
	serviceDescription string,
	customerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(vin) == 0 {
		return nil, fmt.Errorf("VIN is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Ticket{
		id:                 id,
		vin:                vin,
		serviceDate:        serviceDate,
		serviceDescription: serviceDescription,
		customerID:         customerID,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) VIN() string {
	return t.vin
}

func (t *Ticket) ServiceDate() time.Time {
	return t.serviceDate
}

func (t *Ticket) ServiceDescription() string {
	return t.serviceDescription
}

func (t *Ticket) CustomerID() uint {
	return t.customerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy reports whether the given customer owns this ticket.
func (t *Ticket) IsOwnedBy(customerID uint) bool {
	return t.customerID == customerID
}

func (t *Ticket) UpdateVIN(vin string) error {
	if len(vin) == 0 {
		return fmt.Errorf("VIN cannot be empty")
	}
	if len(vin) > 255 {
		return fmt.Errorf("VIN exceeds maximum length of 255 characters")
	}
	t.vin = vin
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Reschedule(serviceDate time.Time) error {
	if serviceDate.IsZero() {
		return fmt.Errorf("service date cannot be zero")
	}
	t.serviceDate = serviceDate
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) UpdateServiceDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("service description cannot be empty")
	}
	if len(description) > 1000 {
		return fmt.Errorf("service description exceeds maximum length of 1000 characters")
	}
	t.serviceDescription = description
	t.updatedAt = time.Now()
	return nil
}
