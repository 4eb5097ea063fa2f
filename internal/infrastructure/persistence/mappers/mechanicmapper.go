package mappers

import (
	"time"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/infrastructure/persistence/models"
)

// MechanicMapper handles the conversion between Mechanic domain entities
// and persistence models.
type MechanicMapper interface {
	ToModel(m *mechanic.Mechanic) *models.MechanicModel
	ToDomain(model *models.MechanicModel) (*mechanic.Mechanic, error)
}

type MechanicMapperImpl struct{}

func NewMechanicMapper() MechanicMapper {
	return &MechanicMapperImpl{}
}

func (mm *MechanicMapperImpl) ToModel(m *mechanic.Mechanic) *models.MechanicModel {
	return &models.MechanicModel{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		Salary:    m.Salary(),
		CreatedAt: m.CreatedAt().UnixMilli(),
		UpdatedAt: m.UpdatedAt().UnixMilli(),
	}
}

func (mm *MechanicMapperImpl) ToDomain(model *models.MechanicModel) (*mechanic.Mechanic, error) {
	return mechanic.ReconstructMechanic(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.Salary,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
