package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gearshop/internal/domain/customer"
	"gearshop/internal/domain/inventory"
	"gearshop/internal/domain/mechanic"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// passthroughTxRunner runs the function directly without a database.
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*ticket.Ticket, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) MechanicIDs(ctx context.Context, ticketID uint) ([]uint, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockTicketRepository) ListMechanics(ctx context.Context, ticketID uint) ([]ticket.AssignedMechanic, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticket.AssignedMechanic), args.Error(1)
}

func (m *mockTicketRepository) AssignMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	args := m.Called(ctx, ticketID, mechanicID)
	return args.Error(0)
}

func (m *mockTicketRepository) RemoveMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	args := m.Called(ctx, ticketID, mechanicID)
	return args.Error(0)
}

func (m *mockTicketRepository) LinkedInventoryIDs(ctx context.Context, ticketID uint, inventoryIDs []uint) ([]uint, error) {
	args := m.Called(ctx, ticketID, inventoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockTicketRepository) AddInventoryLines(ctx context.Context, ticketID uint, lines []ticket.InventoryLine) error {
	args := m.Called(ctx, ticketID, lines)
	return args.Error(0)
}

func (m *mockTicketRepository) ListInventoryLines(ctx context.Context, ticketID uint) ([]ticket.InventoryLine, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticket.InventoryLine), args.Error(1)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *mockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
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

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockInventoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInventoryRepository) FindByID(ctx context.Context, id uint) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *mockInventoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockInventoryRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockInventoryRepository) List(ctx context.Context, page, pageSize int) ([]*inventory.Item, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*inventory.Item), args.Get(1).(int64), args.Error(2)
}

func reconstructTestTicket(t *testing.T, id, customerID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	entity, err := ticket.ReconstructTicket(
		id, "1HGBH41JXMN109186", now.Add(24*time.Hour), "brake pad replacement", customerID, now, now)
	require.NoError(t, err)
	return entity
}

func reconstructTestMechanic(t *testing.T, id uint) *mechanic.Mechanic {
	t.Helper()
	now := time.Now()
	entity, err := mechanic.ReconstructMechanic(
		id, "Wrench Turner", "wrench@example.com", "555-0200", 52000, now, now)
	require.NoError(t, err)
	return entity
}

func reconstructTestCustomer(t *testing.T, id uint) *customer.Customer {
	t.Helper()
	now := time.Now()
	entity, err := customer.ReconstructCustomer(
		id, "Ada Lovelace", "ada@example.com", "555-0100", "hashed", now, now)
	require.NoError(t, err)
	return entity
}
