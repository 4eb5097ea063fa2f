package usecases

import (
	"context"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/shared/logger"
)

// DeleteItemUseCase removes an item together with its ticket
// association rows.
type DeleteItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewDeleteItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.inventoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("inventory item deleted", "id", id)
	return nil
}
