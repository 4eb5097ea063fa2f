package usecases

import (
	"context"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type UpdateMechanicsCommand struct {
	TicketID  uint
	AddIDs    []uint
	RemoveIDs []uint
}

// UpdateMechanicsUseCase applies bulk add and remove edits to a
// ticket's mechanic set in one transaction. Ids that do not name an
// existing mechanic are skipped silently, as are adds of already
// linked mechanics and removes of unlinked ones.
type UpdateMechanicsUseCase struct {
	ticketRepo   ticket.Repository
	mechanicRepo mechanic.Repository
	txRunner     TransactionRunner
	logger       logger.Interface
}

func NewUpdateMechanicsUseCase(
	ticketRepo ticket.Repository,
	mechanicRepo mechanic.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *UpdateMechanicsUseCase {
	return &UpdateMechanicsUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		txRunner:     txRunner,
		logger:       logger,
	}
}

func (uc *UpdateMechanicsUseCase) Execute(ctx context.Context, cmd UpdateMechanicsCommand) (*TicketResult, error) {
	entity, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		linkedIDs, err := uc.ticketRepo.MechanicIDs(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		linked := make(map[uint]bool, len(linkedIDs))
		for _, id := range linkedIDs {
			linked[id] = true
		}

		for _, id := range cmd.AddIDs {
			if linked[id] {
				continue
			}
			if _, err := uc.mechanicRepo.FindByID(txCtx, id); err != nil {
				if errors.IsNotFoundError(err) {
					continue
				}
				return err
			}
			if err := uc.ticketRepo.AssignMechanic(txCtx, cmd.TicketID, id); err != nil {
				return err
			}
			linked[id] = true
		}

		for _, id := range cmd.RemoveIDs {
			if !linked[id] {
				continue
			}
			if err := uc.ticketRepo.RemoveMechanic(txCtx, cmd.TicketID, id); err != nil {
				return err
			}
			linked[id] = false
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket mechanics", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	mechanics, err := uc.ticketRepo.ListMechanics(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket mechanics updated",
		"ticket_id", cmd.TicketID,
		"added", len(cmd.AddIDs),
		"removed", len(cmd.RemoveIDs))
	return newTicketResult(entity, mechanics), nil
}
