package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type UpdateItemCommand struct {
	ID   uint
	Name string
	// Price is nil when the field was not supplied.
	Price *float64
}

type UpdateItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewUpdateItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*ItemResult, error) {
	entity, err := uc.inventoryRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// Only supplied fields are overwritten.
	if cmd.Name != "" && cmd.Name != entity.Name() {
		exists, err := uc.inventoryRepo.ExistsByName(ctx, cmd.Name)
		if err != nil {
			uc.logger.Errorw("failed to check existing item", "name", cmd.Name, "error", err)
			return nil, fmt.Errorf("failed to check existing item: %w", err)
		}
		if exists {
			return nil, errors.NewValidationError(fmt.Sprintf("inventory item with name %s already exists", cmd.Name))
		}
		if err := entity.Rename(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Price != nil {
		if err := entity.ChangePrice(*cmd.Price); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.inventoryRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update item", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("inventory item updated", "id", entity.ID())
	return newItemResult(entity), nil
}
