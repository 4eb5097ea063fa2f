package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/shared/logger"
)

type ListItemsCommand struct {
	// Page and PageSize are applied only when both are positive;
	// otherwise the full set is returned.
	Page     int
	PageSize int
}

type ListItemsResult struct {
	Items     []*ItemResult
	Total     int64
	Page      int
	PageSize  int
	Paginated bool
}

type ListItemsUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewListItemsUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *ListItemsUseCase {
	return &ListItemsUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, cmd ListItemsCommand) (*ListItemsResult, error) {
	page, pageSize := cmd.Page, cmd.PageSize
	paginated := page > 0 && pageSize > 0
	if !paginated {
		page, pageSize = 0, 0
	}

	entities, total, err := uc.inventoryRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list inventory items", "error", err)
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	items := make([]*ItemResult, 0, len(entities))
	for _, entity := range entities {
		items = append(items, newItemResult(entity))
	}

	return &ListItemsResult{
		Items:     items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		Paginated: paginated,
	}, nil
}
