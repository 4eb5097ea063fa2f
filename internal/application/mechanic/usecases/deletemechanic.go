package usecases

import (
	"context"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/shared/logger"
)

// DeleteMechanicUseCase removes a mechanic together with its ticket
// assignment rows.
type DeleteMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewDeleteMechanicUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *DeleteMechanicUseCase {
	return &DeleteMechanicUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *DeleteMechanicUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.mechanicRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("mechanic deleted", "id", id)
	return nil
}
