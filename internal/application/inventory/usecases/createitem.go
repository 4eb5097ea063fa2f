package usecases

import (
	"context"
	"fmt"
	"time"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type CreateItemCommand struct {
	Name  string
	Price float64
}

type ItemResult struct {
	ID        uint
	Name      string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newItemResult(item *inventory.Item) *ItemResult {
	return &ItemResult{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}
}

type CreateItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewCreateItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *CreateItemUseCase {
	return &CreateItemUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*ItemResult, error) {
	exists, err := uc.inventoryRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check existing item", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to check existing item: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError(fmt.Sprintf("inventory item with name %s already exists", cmd.Name))
	}

	entity, err := inventory.NewItem(cmd.Name, cmd.Price)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inventoryRepo.Save(ctx, entity); err != nil {
		uc.logger.Errorw("failed to save item", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("inventory item created", "id", entity.ID(), "name", entity.Name())
	return newItemResult(entity), nil
}
