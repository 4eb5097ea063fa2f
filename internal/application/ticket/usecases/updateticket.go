package usecases

import (
	"context"
	"fmt"
	"time"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID           uint
	CustomerID         uint // authenticated caller
	VIN                string
	ServiceDate        time.Time
	ServiceDescription string
}

// UpdateTicketUseCase lets a customer edit one of their own tickets.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
	entity, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !entity.IsOwnedBy(cmd.CustomerID) {
		return nil, errors.NewUnauthorizedError("ticket does not belong to the authenticated customer")
	}

	// Only supplied fields are overwritten.
	if cmd.VIN != "" {
		if err := entity.UpdateVIN(cmd.VIN); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if !cmd.ServiceDate.IsZero() {
		if err := entity.Reschedule(cmd.ServiceDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ServiceDescription != "" {
		if err := entity.UpdateServiceDescription(cmd.ServiceDescription); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update ticket", "id", cmd.TicketID, "error", err)
		return nil, err
	}

	mechanics, err := uc.ticketRepo.ListMechanics(ctx, entity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket mechanics: %w", err)
	}

	uc.logger.Infow("ticket updated", "id", entity.ID(), "customer_id", cmd.CustomerID)
	return newTicketResult(entity, mechanics), nil
}
