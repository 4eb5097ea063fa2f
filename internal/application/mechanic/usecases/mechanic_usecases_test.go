package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockMechanicRepository struct {
	mock.Mock
}

func (m *mockMechanicRepository) Save(ctx context.Context, mech *mechanic.Mechanic) error {
	args := m.Called(ctx, mech)
	return args.Error(0)
}

func (m *mockMechanicRepository) Update(ctx context.Context, mech *mechanic.Mechanic) error {
	args := m.Called(ctx, mech)
	return args.Error(0)
}

func (m *mockMechanicRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMechanicRepository) FindByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mechanic.Mechanic), args.Error(1)
}

func (m *mockMechanicRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockMechanicRepository) List(ctx context.Context) ([]*mechanic.Mechanic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mechanic.Mechanic), args.Error(1)
}

func reconstructTestMechanic(t *testing.T, id uint, email string) *mechanic.Mechanic {
	t.Helper()
	now := time.Now()
	m, err := mechanic.ReconstructMechanic(id, "Wrench Turner", email, "555-0200", 52000, now, now)
	require.NoError(t, err)
	return m
}

func TestCreateMechanicUseCase_Execute(t *testing.T) {
	cmd := CreateMechanicCommand{
		Name:   "Wrench Turner",
		Email:  "wrench@example.com",
		Phone:  "555-0200",
		Salary: 52000,
	}

	t.Run("creates mechanic", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewCreateMechanicUseCase(repo, newTestLogger())

		repo.On("ExistsByEmail", mock.Anything, cmd.Email).Return(false, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(m *mechanic.Mechanic) bool {
			return m.Email() == cmd.Email && m.Salary() == cmd.Salary
		})).Return(nil).Run(func(args mock.Arguments) {
			m := args.Get(1).(*mechanic.Mechanic)
			_ = m.SetID(5)
		})

		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, cmd.Salary, result.Salary)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewCreateMechanicUseCase(repo, newTestLogger())

		repo.On("ExistsByEmail", mock.Anything, cmd.Email).Return(true, nil)

		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative salary", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewCreateMechanicUseCase(repo, newTestLogger())

		bad := cmd
		bad.Salary = -1
		repo.On("ExistsByEmail", mock.Anything, bad.Email).Return(false, nil)

		_, err := uc.Execute(context.Background(), bad)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateMechanicUseCase_Execute(t *testing.T) {
	t.Run("updates all fields", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewUpdateMechanicUseCase(repo, newTestLogger())

		entity := reconstructTestMechanic(t, 5, "wrench@example.com")
		repo.On("FindByID", mock.Anything, uint(5)).Return(entity, nil)
		repo.On("Update", mock.Anything, entity).Return(nil)

		salary := float64(60000)
		result, err := uc.Execute(context.Background(), UpdateMechanicCommand{
			ID:     5,
			Name:   "Torque Spanner",
			Email:  "wrench@example.com",
			Phone:  "555-0201",
			Salary: &salary,
		})
		require.NoError(t, err)
		assert.Equal(t, "Torque Spanner", result.Name)
		assert.Equal(t, salary, result.Salary)
	})

	t.Run("missing mechanic yields not found", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewUpdateMechanicUseCase(repo, newTestLogger())

		repo.On("FindByID", mock.Anything, uint(42)).
			Return(nil, errors.NewNotFoundError("no mechanic found with id: 42"))

		_, err := uc.Execute(context.Background(), UpdateMechanicCommand{ID: 42})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteMechanicUseCase_Execute(t *testing.T) {
	t.Run("deletes mechanic", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewDeleteMechanicUseCase(repo, newTestLogger())

		repo.On("Delete", mock.Anything, uint(5)).Return(nil)

		assert.NoError(t, uc.Execute(context.Background(), 5))
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(mockMechanicRepository)
		uc := NewDeleteMechanicUseCase(repo, newTestLogger())

		repo.On("Delete", mock.Anything, uint(42)).
			Return(errors.NewNotFoundError("no mechanic found with id: 42"))

		err := uc.Execute(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListMechanicsUseCase_Execute(t *testing.T) {
	repo := new(mockMechanicRepository)
	uc := NewListMechanicsUseCase(repo, newTestLogger())

	repo.On("List", mock.Anything).Return([]*mechanic.Mechanic{
		reconstructTestMechanic(t, 1, "a@example.com"),
		reconstructTestMechanic(t, 2, "b@example.com"),
	}, nil)

	results, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint(1), results[0].ID)
	assert.Equal(t, uint(2), results[1].ID)
}
