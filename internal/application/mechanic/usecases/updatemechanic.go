package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type UpdateMechanicCommand struct {
	ID    uint
	Name  string
	Email string
	Phone string
	// Salary is nil when the field was not supplied.
	Salary *float64
}

type UpdateMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewUpdateMechanicUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *UpdateMechanicUseCase {
	return &UpdateMechanicUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *UpdateMechanicUseCase) Execute(ctx context.Context, cmd UpdateMechanicCommand) (*MechanicResult, error) {
	entity, err := uc.mechanicRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// Only supplied fields are overwritten.
	if cmd.Email != "" && cmd.Email != entity.Email() {
		exists, err := uc.mechanicRepo.ExistsByEmail(ctx, cmd.Email)
		if err != nil {
			uc.logger.Errorw("failed to check existing mechanic", "email", cmd.Email, "error", err)
			return nil, fmt.Errorf("failed to check existing mechanic: %w", err)
		}
		if exists {
			return nil, errors.NewValidationError(fmt.Sprintf("mechanic with email %s already exists", cmd.Email))
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
	if cmd.Salary != nil {
		if err := entity.UpdateSalary(*cmd.Salary); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.mechanicRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update mechanic", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("mechanic updated", "id", entity.ID())
	return newMechanicResult(entity), nil
}
