package usecases

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"gearshop/internal/domain/customer"
	"gearshop/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
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

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(password, hash string) error {
	args := m.Called(password, hash)
	return args.Error(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Generate(customerID uint) (string, error) {
	args := m.Called(customerID)
	return args.String(0), args.Error(1)
}
