package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/shared/logger"
)

type ListMechanicsUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewListMechanicsUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *ListMechanicsUseCase {
	return &ListMechanicsUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *ListMechanicsUseCase) Execute(ctx context.Context) ([]*MechanicResult, error) {
	entities, err := uc.mechanicRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list mechanics", "error", err)
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}

	results := make([]*MechanicResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, newMechanicResult(entity))
	}
	return results, nil
}
