package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/errors"
)

func reconstructTestCustomer(t *testing.T, id uint, email, hash string) *customer.Customer {
	t.Helper()
	now := time.Now()
	c, err := customer.ReconstructCustomer(id, "Ada Lovelace", email, "555-0100", hash, now, now)
	require.NoError(t, err)
	return c
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("issues token on valid credentials", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		tokens := new(mockTokenIssuer)
		uc := NewLoginUseCase(repo, hasher, tokens, newTestLogger())

		entity := reconstructTestCustomer(t, 7, "ada@example.com", "hashed")
		repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(entity, nil)
		hasher.On("Verify", "secret123", "hashed").Return(nil)
		tokens.On("Generate", uint(7)).Return("signed-token", nil)

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "ada@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, uint(7), result.CustomerID)
	})

	t.Run("unknown email yields unauthorized", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		tokens := new(mockTokenIssuer)
		uc := NewLoginUseCase(repo, hasher, tokens, newTestLogger())

		repo.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errors.NewNotFoundError("customer not found"))

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("wrong password yields the same message", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		tokens := new(mockTokenIssuer)
		uc := NewLoginUseCase(repo, hasher, tokens, newTestLogger())

		entity := reconstructTestCustomer(t, 7, "ada@example.com", "hashed")
		repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(entity, nil)
		hasher.On("Verify", "wrong", "hashed").Return(assert.AnError)

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "ada@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "invalid email or password", appErr.Message)
		tokens.AssertNotCalled(t, "Generate", mock.Anything)
	})
}

func TestUpdateCustomerUseCase_Execute(t *testing.T) {
	t.Run("updates fields and rehashes password", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		uc := NewUpdateCustomerUseCase(repo, hasher, newTestLogger())

		entity := reconstructTestCustomer(t, 3, "old@example.com", "old-hash")
		repo.On("FindByID", mock.Anything, uint(3)).Return(entity, nil)
		repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
		hasher.On("Hash", "newpass").Return("new-hash", nil)
		repo.On("Update", mock.Anything, entity).Return(nil)

		result, err := uc.Execute(context.Background(), UpdateCustomerCommand{
			ID:       3,
			Name:     "Grace Hopper",
			Email:    "new@example.com",
			Phone:    "555-0101",
			Password: "newpass",
		})
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", result.Name)
		assert.Equal(t, "new@example.com", result.Email)
		assert.Equal(t, "new-hash", entity.PasswordHash())
	})

	t.Run("missing customer yields not found", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		uc := NewUpdateCustomerUseCase(repo, hasher, newTestLogger())

		repo.On("FindByID", mock.Anything, uint(99)).
			Return(nil, errors.NewNotFoundError("no customer found with id: 99"))

		_, err := uc.Execute(context.Background(), UpdateCustomerCommand{ID: 99})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects email taken by another customer", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		uc := NewUpdateCustomerUseCase(repo, hasher, newTestLogger())

		entity := reconstructTestCustomer(t, 3, "old@example.com", "old-hash")
		repo.On("FindByID", mock.Anything, uint(3)).Return(entity, nil)
		repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		_, err := uc.Execute(context.Background(), UpdateCustomerCommand{
			ID:    3,
			Name:  "Ada Lovelace",
			Email: "taken@example.com",
			Phone: "555-0100",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
