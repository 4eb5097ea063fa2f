package usecases

import (
	"context"
	"time"

	"gearshop/internal/domain/customer"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type CreateTicketCommand struct {
	VIN                string
	ServiceDate        time.Time
	ServiceDescription string
	CustomerID         uint
}

// CreateTicketUseCase opens a new service ticket for an existing
// customer.
type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketResult, error) {
	if _, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID); err != nil {
		return nil, err
	}

	entity, err := ticket.NewTicket(cmd.VIN, cmd.ServiceDate, cmd.ServiceDescription, cmd.CustomerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, entity); err != nil {
		uc.logger.Errorw("failed to save ticket", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "id", entity.ID(), "customer_id", entity.CustomerID())
	return newTicketResult(entity, nil), nil
}
