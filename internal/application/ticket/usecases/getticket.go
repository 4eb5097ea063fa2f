package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, id uint) (*TicketResult, error) {
	entity, err := uc.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mechanics, err := uc.ticketRepo.ListMechanics(ctx, entity.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket mechanics", "ticket_id", id, "error", err)
		return nil, fmt.Errorf("failed to list ticket mechanics: %w", err)
	}

	return newTicketResult(entity, mechanics), nil
}
