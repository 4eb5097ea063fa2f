package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]*TicketResult, error) {
	entities, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	results := make([]*TicketResult, 0, len(entities))
	for _, entity := range entities {
		mechanics, err := uc.ticketRepo.ListMechanics(ctx, entity.ID())
		if err != nil {
			uc.logger.Errorw("failed to list ticket mechanics", "ticket_id", entity.ID(), "error", err)
			return nil, fmt.Errorf("failed to list ticket mechanics: %w", err)
		}
		results = append(results, newTicketResult(entity, mechanics))
	}
	return results, nil
}
