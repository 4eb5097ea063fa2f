package usecases

import (
	"context"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/shared/logger"
)

type GetItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewGetItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *GetItemUseCase {
	return &GetItemUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, id uint) (*ItemResult, error) {
	entity, err := uc.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newItemResult(entity), nil
}
