package usecases

import (
	"context"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/logger"
)

type AssignMechanicCommand struct {
	TicketID   uint
	MechanicID uint
}

type AssignMechanicResult struct {
	Ticket *TicketResult
	// AlreadyAssigned is set when the pair was linked before this call.
	// The operation is idempotent and still succeeds.
	AlreadyAssigned bool
}

type AssignMechanicUseCase struct {
	ticketRepo   ticket.Repository
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewAssignMechanicUseCase(
	ticketRepo ticket.Repository,
	mechanicRepo mechanic.Repository,
	logger logger.Interface,
) *AssignMechanicUseCase {
	return &AssignMechanicUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *AssignMechanicUseCase) Execute(ctx context.Context, cmd AssignMechanicCommand) (*AssignMechanicResult, error) {
	entity, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.mechanicRepo.FindByID(ctx, cmd.MechanicID); err != nil {
		return nil, err
	}

	linked, err := uc.ticketRepo.MechanicIDs(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	alreadyAssigned := false
	for _, id := range linked {
		if id == cmd.MechanicID {
			alreadyAssigned = true
			break
		}
	}

	if !alreadyAssigned {
		if err := uc.ticketRepo.AssignMechanic(ctx, cmd.TicketID, cmd.MechanicID); err != nil {
			uc.logger.Errorw("failed to assign mechanic",
				"ticket_id", cmd.TicketID, "mechanic_id", cmd.MechanicID, "error", err)
			return nil, err
		}
		uc.logger.Infow("mechanic assigned", "ticket_id", cmd.TicketID, "mechanic_id", cmd.MechanicID)
	}

	mechanics, err := uc.ticketRepo.ListMechanics(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	return &AssignMechanicResult{
		Ticket:          newTicketResult(entity, mechanics),
		AlreadyAssigned: alreadyAssigned,
	}, nil
}
