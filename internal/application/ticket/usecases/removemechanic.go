package usecases

import (
	"context"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/logger"
)

type RemoveMechanicCommand struct {
	TicketID   uint
	MechanicID uint
}

// RemoveMechanicUseCase unlinks a mechanic from a ticket. Removing a
// mechanic that is not assigned is an error, unlike assignment which
// is idempotent.
type RemoveMechanicUseCase struct {
	ticketRepo   ticket.Repository
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewRemoveMechanicUseCase(
	ticketRepo ticket.Repository,
	mechanicRepo mechanic.Repository,
	logger logger.Interface,
) *RemoveMechanicUseCase {
	return &RemoveMechanicUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *RemoveMechanicUseCase) Execute(ctx context.Context, cmd RemoveMechanicCommand) (*TicketResult, error) {
	entity, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.mechanicRepo.FindByID(ctx, cmd.MechanicID); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.RemoveMechanic(ctx, cmd.TicketID, cmd.MechanicID); err != nil {
		return nil, err
	}

	mechanics, err := uc.ticketRepo.ListMechanics(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("mechanic removed", "ticket_id", cmd.TicketID, "mechanic_id", cmd.MechanicID)
	return newTicketResult(entity, mechanics), nil
}
