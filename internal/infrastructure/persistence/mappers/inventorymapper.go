package mappers

import (
	"time"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/infrastructure/persistence/models"
)

// InventoryMapper handles the conversion between inventory Item domain
// entities and persistence models.
type InventoryMapper interface {
	ToModel(i *inventory.Item) *models.InventoryModel
	ToDomain(model *models.InventoryModel) (*inventory.Item, error)
}

type InventoryMapperImpl struct{}

func NewInventoryMapper() InventoryMapper {
	return &InventoryMapperImpl{}
}

func (m *InventoryMapperImpl) ToModel(i *inventory.Item) *models.InventoryModel {
	return &models.InventoryModel{
		ID:        i.ID(),
		Name:      i.Name(),
		Price:     i.Price(),
		CreatedAt: i.CreatedAt().UnixMilli(),
		UpdatedAt: i.UpdatedAt().UnixMilli(),
	}
}

func (m *InventoryMapperImpl) ToDomain(model *models.InventoryModel) (*inventory.Item, error) {
	return inventory.ReconstructItem(
		model.ID,
		model.Name,
		model.Price,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
