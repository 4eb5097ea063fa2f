package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/errors"
)

func TestCreateCustomerUseCase_Execute(t *testing.T) {
	cmd := CreateCustomerCommand{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Password: "secret123",
	}

	t.Run("creates customer with hashed password", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		uc := NewCreateCustomerUseCase(repo, hasher, newTestLogger())

		repo.On("ExistsByEmail", mock.Anything, cmd.Email).Return(false, nil)
		hasher.On("Hash", cmd.Password).Return("hashed", nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Email() == cmd.Email && c.PasswordHash() == "hashed"
		})).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*customer.Customer)
			_ = c.SetID(1)
		})

		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, cmd.Name, result.Name)
		assert.Equal(t, cmd.Email, result.Email)
		repo.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		uc := NewCreateCustomerUseCase(repo, hasher, newTestLogger())

		repo.On("ExistsByEmail", mock.Anything, cmd.Email).Return(true, nil)

		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		repo := new(mockCustomerRepository)
		hasher := new(mockHasher)
		uc := NewCreateCustomerUseCase(repo, hasher, newTestLogger())

		bad := cmd
		bad.Name = ""
		repo.On("ExistsByEmail", mock.Anything, bad.Email).Return(false, nil)
		hasher.On("Hash", bad.Password).Return("hashed", nil)

		_, err := uc.Execute(context.Background(), bad)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
