package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/errors"
)

func TestUpdateMechanicsUseCase_Execute(t *testing.T) {
	newUseCase := func(ticketRepo *mockTicketRepository, mechanicRepo *mockMechanicRepository) *UpdateMechanicsUseCase {
		return NewUpdateMechanicsUseCase(ticketRepo, mechanicRepo, passthroughTxRunner{}, newTestLogger())
	}

	t.Run("adds and removes in one pass", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		ticketRepo.On("MechanicIDs", mock.Anything, uint(1)).Return([]uint{2}, nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(3)).Return(reconstructTestMechanic(t, 3), nil)
		ticketRepo.On("AssignMechanic", mock.Anything, uint(1), uint(3)).Return(nil)
		ticketRepo.On("RemoveMechanic", mock.Anything, uint(1), uint(2)).Return(nil)
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{
			{ID: 3, Name: "Wrench Turner"},
		}, nil)

		result, err := uc.Execute(context.Background(), UpdateMechanicsCommand{
			TicketID:  1,
			AddIDs:    []uint{3},
			RemoveIDs: []uint{2},
		})
		require.NoError(t, err)
		require.Len(t, result.Mechanics, 1)
		assert.Equal(t, uint(3), result.Mechanics[0].ID)
		assert.Equal(t, "Wrench Turner", result.Mechanics[0].Name)
	})

	t.Run("silently skips unknown mechanic ids", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		ticketRepo.On("MechanicIDs", mock.Anything, uint(1)).Return([]uint{}, nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(99)).
			Return(nil, errors.NewNotFoundError("no mechanic found with id: 99"))
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{}, nil)

		result, err := uc.Execute(context.Background(), UpdateMechanicsCommand{
			TicketID: 1,
			AddIDs:   []uint{99},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Mechanics)
		ticketRepo.AssertNotCalled(t, "AssignMechanic", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips already linked adds and unlinked removes", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		ticketRepo.On("MechanicIDs", mock.Anything, uint(1)).Return([]uint{2}, nil)
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{
			{ID: 2, Name: "Wrench Turner"},
		}, nil)

		result, err := uc.Execute(context.Background(), UpdateMechanicsCommand{
			TicketID:  1,
			AddIDs:    []uint{2},  // already linked
			RemoveIDs: []uint{50}, // never linked
		})
		require.NoError(t, err)
		require.Len(t, result.Mechanics, 1)
		ticketRepo.AssertNotCalled(t, "AssignMechanic", mock.Anything, mock.Anything, mock.Anything)
		ticketRepo.AssertNotCalled(t, "RemoveMechanic", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(42)).
			Return(nil, errors.NewNotFoundError("no ticket found with id: 42"))

		_, err := uc.Execute(context.Background(), UpdateMechanicsCommand{TicketID: 42})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestAssignMechanicUseCase_Execute(t *testing.T) {
	newUseCase := func(ticketRepo *mockTicketRepository, mechanicRepo *mockMechanicRepository) *AssignMechanicUseCase {
		return NewAssignMechanicUseCase(ticketRepo, mechanicRepo, newTestLogger())
	}

	t.Run("assigns an unlinked mechanic", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(3)).Return(reconstructTestMechanic(t, 3), nil)
		ticketRepo.On("MechanicIDs", mock.Anything, uint(1)).Return([]uint{}, nil)
		ticketRepo.On("AssignMechanic", mock.Anything, uint(1), uint(3)).Return(nil)
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{
			{ID: 3, Name: "Wrench Turner"},
		}, nil)

		result, err := uc.Execute(context.Background(), AssignMechanicCommand{TicketID: 1, MechanicID: 3})
		require.NoError(t, err)
		assert.False(t, result.AlreadyAssigned)
		require.Len(t, result.Ticket.Mechanics, 1)
	})

	t.Run("repeat assignment is an idempotent success", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(3)).Return(reconstructTestMechanic(t, 3), nil)
		ticketRepo.On("MechanicIDs", mock.Anything, uint(1)).Return([]uint{3}, nil)
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{
			{ID: 3, Name: "Wrench Turner"},
		}, nil)

		result, err := uc.Execute(context.Background(), AssignMechanicCommand{TicketID: 1, MechanicID: 3})
		require.NoError(t, err)
		assert.True(t, result.AlreadyAssigned)
		ticketRepo.AssertNotCalled(t, "AssignMechanic", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown mechanic yields not found", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := newUseCase(ticketRepo, mechanicRepo)

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(99)).
			Return(nil, errors.NewNotFoundError("no mechanic found with id: 99"))

		_, err := uc.Execute(context.Background(), AssignMechanicCommand{TicketID: 1, MechanicID: 99})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRemoveMechanicUseCase_Execute(t *testing.T) {
	t.Run("removes a linked mechanic", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := NewRemoveMechanicUseCase(ticketRepo, mechanicRepo, newTestLogger())

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(3)).Return(reconstructTestMechanic(t, 3), nil)
		ticketRepo.On("RemoveMechanic", mock.Anything, uint(1), uint(3)).Return(nil)
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{}, nil)

		result, err := uc.Execute(context.Background(), RemoveMechanicCommand{TicketID: 1, MechanicID: 3})
		require.NoError(t, err)
		assert.Empty(t, result.Mechanics)
	})

	t.Run("removing an unassigned mechanic yields not found", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		mechanicRepo := new(mockMechanicRepository)
		uc := NewRemoveMechanicUseCase(ticketRepo, mechanicRepo, newTestLogger())

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
		mechanicRepo.On("FindByID", mock.Anything, uint(3)).Return(reconstructTestMechanic(t, 3), nil)
		ticketRepo.On("RemoveMechanic", mock.Anything, uint(1), uint(3)).
			Return(errors.NewNotFoundError("mechanic id: 3 is not assigned to ticket id: 1"))

		_, err := uc.Execute(context.Background(), RemoveMechanicCommand{TicketID: 1, MechanicID: 3})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
