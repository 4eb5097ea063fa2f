package mappers

import (
	"time"

	"gearshop/internal/domain/customer"
	"gearshop/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between Customer domain entities
// and persistence models.
type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		PasswordHash: c.PasswordHash(),
		CreatedAt:    c.CreatedAt().UnixMilli(),
		UpdatedAt:    c.UpdatedAt().UnixMilli(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.PasswordHash,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
