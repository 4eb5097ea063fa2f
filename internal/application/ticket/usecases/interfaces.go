package usecases

import (
	"context"
	"time"

	"gearshop/internal/domain/ticket"
)

// TransactionRunner executes fn atomically. All repository calls made
// with the derived context share one transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MechanicRef is the trimmed mechanic shape embedded in ticket results.
type MechanicRef struct {
	ID   uint
	Name string
}

type TicketResult struct {
	ID                 uint
	VIN                string
	ServiceDate        time.Time
	ServiceDescription string
	CustomerID         uint
	Mechanics          []MechanicRef
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newTicketResult(t *ticket.Ticket, mechanics []ticket.AssignedMechanic) *TicketResult {
	refs := make([]MechanicRef, 0, len(mechanics))
	for _, m := range mechanics {
		refs = append(refs, MechanicRef{ID: m.ID, Name: m.Name})
	}
	return &TicketResult{
		ID:                 t.ID(),
		VIN:                t.VIN(),
		ServiceDate:        t.ServiceDate(),
		ServiceDescription: t.ServiceDescription(),
		CustomerID:         t.CustomerID(),
		Mechanics:          refs,
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}
