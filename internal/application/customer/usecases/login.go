package usecases

import (
	"context"
	"fmt"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token      string
	CustomerID uint
}

// LoginUseCase authenticates a customer by email and password and
// issues an access token.
type LoginUseCase struct {
	customerRepo customer.Repository
	hasher       PasswordHasher
	tokens       TokenIssuer
	logger       logger.Interface
}

func NewLoginUseCase(
	customerRepo customer.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	entity, err := uc.customerRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same message for unknown email and wrong password.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get customer by email", "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, entity.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(entity.ID())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "customer_id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("customer logged in", "customer_id", entity.ID())
	return &LoginResult{Token: token, CustomerID: entity.ID()}, nil
}
