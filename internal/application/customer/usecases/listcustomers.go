package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/logger"
)

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*CustomerResult, error) {
	entities, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	results := make([]*CustomerResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, newCustomerResult(entity))
	}
	return results, nil
}
