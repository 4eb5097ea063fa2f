package usecases

import (
	"context"
	"fmt"
	"time"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type CustomerResult struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newCustomerResult(c *customer.Customer) *CustomerResult {
	return &CustomerResult{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

// CreateCustomerUseCase registers a new customer with a hashed password.
type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CustomerResult, error) {
	exists, err := uc.customerRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing customer", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError(fmt.Sprintf("customer with email %s already exists", cmd.Email))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity, err := customer.NewCustomer(cmd.Name, cmd.Email, cmd.Phone, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Save(ctx, entity); err != nil {
		uc.logger.Errorw("failed to save customer", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("customer created", "id", entity.ID(), "email", entity.Email())
	return newCustomerResult(entity), nil
}
