package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type UpdateCustomerCommand struct {
	ID       uint
	Name     string
	Email    string
	Phone    string
	Password string
}

// UpdateCustomerUseCase replaces all mutable customer fields.
type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerResult, error) {
	entity, err := uc.customerRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// Only supplied fields are overwritten.
	if cmd.Email != "" && cmd.Email != entity.Email() {
		exists, err := uc.customerRepo.ExistsByEmail(ctx, cmd.Email)
		if err != nil {
			uc.logger.Errorw("failed to check existing customer", "email", cmd.Email, "error", err)
			return nil, fmt.Errorf("failed to check existing customer: %w", err)
		}
		if exists {
			return nil, errors.NewValidationError(fmt.Sprintf("customer with email %s already exists", cmd.Email))
		}
		if err := entity.UpdateEmail(cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Name != "" {
		if err := entity.UpdateName(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Phone != "" {
		if err := entity.UpdatePhone(cmd.Phone); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != "" {
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := entity.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.customerRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update customer", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("customer updated", "id", entity.ID())
	return newCustomerResult(entity), nil
}
