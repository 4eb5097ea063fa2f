package usecases

import (
	"context"
	"fmt"
	"time"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type CreateMechanicCommand struct {
	Name   string
	Email  string
	Phone  string
	Salary float64
}

type MechanicResult struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Salary    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newMechanicResult(m *mechanic.Mechanic) *MechanicResult {
	return &MechanicResult{
		ID:        m.ID(),
		Name:      m.Name(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		Salary:    m.Salary(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

type CreateMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewCreateMechanicUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *CreateMechanicUseCase {
	return &CreateMechanicUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *CreateMechanicUseCase) Execute(ctx context.Context, cmd CreateMechanicCommand) (*MechanicResult, error) {
	exists, err := uc.mechanicRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing mechanic", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to check existing mechanic: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError(fmt.Sprintf("mechanic with email %s already exists", cmd.Email))
	}

	entity, err := mechanic.NewMechanic(cmd.Name, cmd.Email, cmd.Phone, cmd.Salary)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.mechanicRepo.Save(ctx, entity); err != nil {
		uc.logger.Errorw("failed to save mechanic", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("mechanic created", "id", entity.ID(), "email", entity.Email())
	return newMechanicResult(entity), nil
}
