package usecases

import (
	"context"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/shared/logger"
)

type GetMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewGetMechanicUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *GetMechanicUseCase {
	return &GetMechanicUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *GetMechanicUseCase) Execute(ctx context.Context, id uint) (*MechanicResult, error) {
	entity, err := uc.mechanicRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newMechanicResult(entity), nil
}
