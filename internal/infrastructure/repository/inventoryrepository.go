package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/infrastructure/persistence/mappers"
	"gearshop/internal/infrastructure/persistence/models"
	"gearshop/internal/shared/db"
	apperrors "gearshop/internal/shared/errors"
)

type InventoryRepository struct {
	db     *gorm.DB
	mapper mappers.InventoryMapper
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		mapper: mappers.NewInventoryMapper(),
	}
}

func (r *InventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewValidationError(
				fmt.Sprintf("inventory item with name %s already exists", item.Name()),
			)
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	return item.SetID(model.ID)
}

func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InventoryModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewValidationError(
				fmt.Sprintf("inventory item with name %s already exists", item.Name()),
			)
		}
		return fmt.Errorf("failed to update inventory item: %w", result.Error)
	}

	return nil
}

// Delete removes the item and cascades deletion of its ticket
// association rows, in one transaction.
func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("inventory_id = ?", id).
			Delete(&models.TicketInventoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory associations: %w", err)
		}

		result := tx.Delete(&models.InventoryModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete inventory item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError(
				fmt.Sprintf("no inventory item found with id: %d", id),
			)
		}
		return nil
	})
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uint) (*inventory.Item, error) {
	var model models.InventoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("no inventory item found with id: %d", id),
			)
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InventoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.InventoryModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check inventory name: %w", err)
	}

	return count > 0, nil
}

// FindExistingIDs returns the subset of ids present in the inventory
// table, via a single IN query.
func (r *InventoryRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.InventoryModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to look up inventory ids: %w", err)
	}

	return found, nil
}

func (r *InventoryRepository) List(ctx context.Context, page, pageSize int) ([]*inventory.Item, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InventoryModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	query = query.Order("id ASC")

	if pageSize > 0 {
		offset := (page - 1) * pageSize
		query = query.Limit(pageSize).Offset(offset)
	}

	var itemModels []models.InventoryModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}

	items := make([]*inventory.Item, len(itemModels))
	for i, model := range itemModels {
		item, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		items[i] = item
	}

	return items, total, nil
}
