package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gearshop/internal/domain/customer"
	"gearshop/internal/infrastructure/persistence/mappers"
	"gearshop/internal/infrastructure/persistence/models"
	"gearshop/internal/shared/db"
	apperrors "gearshop/internal/shared/errors"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewValidationError(
				fmt.Sprintf("customer with email %s already exists", c.Email()),
			)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewValidationError(
				fmt.Sprintf("customer with email %s already exists", c.Email()),
			)
		}
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("no customer found with id: %d", id),
			)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.CustomerModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}

	return count > 0, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Find(&customerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*customer.Customer, len(customerModels))
	for i, model := range customerModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		customers[i] = c
	}

	return customers, nil
}
