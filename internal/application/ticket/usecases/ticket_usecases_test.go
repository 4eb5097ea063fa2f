package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	cmd := CreateTicketCommand{
		VIN:                "1HGBH41JXMN109186",
		ServiceDate:        time.Now().Add(24 * time.Hour),
		ServiceDescription: "brake pad replacement",
		CustomerID:         7,
	}

	t.Run("creates ticket for existing customer", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		customerRepo := new(mockCustomerRepository)
		uc := NewCreateTicketUseCase(ticketRepo, customerRepo, newTestLogger())

		customerRepo.On("FindByID", mock.Anything, uint(7)).Return(reconstructTestCustomer(t, 7), nil)
		ticketRepo.On("Save", mock.Anything, mock.MatchedBy(func(tk *ticket.Ticket) bool {
			return tk.VIN() == cmd.VIN && tk.CustomerID() == cmd.CustomerID
		})).Return(nil).Run(func(args mock.Arguments) {
			tk := args.Get(1).(*ticket.Ticket)
			_ = tk.SetID(1)
		})

		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, cmd.VIN, result.VIN)
		assert.Empty(t, result.Mechanics)
	})

	t.Run("unknown customer yields not found", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		customerRepo := new(mockCustomerRepository)
		uc := NewCreateTicketUseCase(ticketRepo, customerRepo, newTestLogger())

		bad := cmd
		bad.CustomerID = 99
		customerRepo.On("FindByID", mock.Anything, uint(99)).
			Return(nil, errors.NewNotFoundError("no customer found with id: 99"))

		_, err := uc.Execute(context.Background(), bad)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		ticketRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	t.Run("owner can edit", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		uc := NewUpdateTicketUseCase(ticketRepo, newTestLogger())

		entity := reconstructTestTicket(t, 1, 7)
		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(entity, nil)
		ticketRepo.On("Update", mock.Anything, entity).Return(nil)
		ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{}, nil)

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:           1,
			CustomerID:         7,
			VIN:                "2FTRX18W1XCA01234",
			ServiceDate:        time.Now().Add(48 * time.Hour),
			ServiceDescription: "oil change",
		})
		require.NoError(t, err)
		assert.Equal(t, "2FTRX18W1XCA01234", result.VIN)
		assert.Equal(t, "oil change", result.ServiceDescription)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		uc := NewUpdateTicketUseCase(ticketRepo, newTestLogger())

		ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:           1,
			CustomerID:         8,
			VIN:                "2FTRX18W1XCA01234",
			ServiceDate:        time.Now(),
			ServiceDescription: "oil change",
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
		ticketRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestListCustomerTicketsUseCase_Execute(t *testing.T) {
	t.Run("returns the caller's tickets", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		customerRepo := new(mockCustomerRepository)
		uc := NewListCustomerTicketsUseCase(ticketRepo, customerRepo, newTestLogger())

		customerRepo.On("FindByID", mock.Anything, uint(7)).Return(reconstructTestCustomer(t, 7), nil)
		ticketRepo.On("FindByCustomerID", mock.Anything, uint(7)).Return([]*ticket.Ticket{
			reconstructTestTicket(t, 1, 7),
			reconstructTestTicket(t, 2, 7),
		}, nil)
		ticketRepo.On("ListMechanics", mock.Anything, mock.Anything).Return([]ticket.AssignedMechanic{}, nil)

		results, err := uc.Execute(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, results, 2)
	})

	t.Run("stale token for deleted customer yields not found", func(t *testing.T) {
		ticketRepo := new(mockTicketRepository)
		customerRepo := new(mockCustomerRepository)
		uc := NewListCustomerTicketsUseCase(ticketRepo, customerRepo, newTestLogger())

		customerRepo.On("FindByID", mock.Anything, uint(7)).
			Return(nil, errors.NewNotFoundError("no customer found with id: 7"))

		_, err := uc.Execute(context.Background(), 7)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		ticketRepo.AssertNotCalled(t, "FindByCustomerID", mock.Anything, mock.Anything)
	})
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	uc := NewGetTicketUseCase(ticketRepo, newTestLogger())

	ticketRepo.On("FindByID", mock.Anything, uint(1)).Return(reconstructTestTicket(t, 1, 7), nil)
	ticketRepo.On("ListMechanics", mock.Anything, uint(1)).Return([]ticket.AssignedMechanic{
		{ID: 3, Name: "Wrench Turner"},
	}, nil)

	result, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.ID)
	require.Len(t, result.Mechanics, 1)
	assert.Equal(t, "Wrench Turner", result.Mechanics[0].Name)
}
