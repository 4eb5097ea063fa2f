package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/customer"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/logger"
)

// ListCustomerTicketsUseCase returns the tickets belonging to the
// authenticated customer. The customer is re-checked against the
// database so a stale token for a deleted account yields not found.
type ListCustomerTicketsUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomerTicketsUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *ListCustomerTicketsUseCase {
	return &ListCustomerTicketsUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomerTicketsUseCase) Execute(ctx context.Context, customerID uint) ([]*TicketResult, error) {
	if _, err := uc.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	entities, err := uc.ticketRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to list customer tickets", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to list customer tickets: %w", err)
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
