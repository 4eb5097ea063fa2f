package usecases

import (
	"context"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/logger"
)

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uint) (*CustomerResult, error) {
	entity, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newCustomerResult(entity), nil
}
