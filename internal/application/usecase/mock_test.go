package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// ---------- Mock CustomerRepository ----------

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) GetByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Customer, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Count(ctx context.Context, filter repository.CustomerFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *mockCustomerRepo) List(ctx context.Context, filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

// ---------- Mock AccountRepository ----------

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepo) UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.Account, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *mockAccountRepo) Count(ctx context.Context, filter repository.AccountFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *mockAccountRepo) List(ctx context.Context, filter repository.AccountFilter, limit, offset int) ([]*entity.Account, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Account), args.Error(1)
}

// ---------- Fake ReadTxRunner ----------

// fakeTx ejecuta fn con los mismos mocks y cuenta cuántas transacciones se abrieron.
type fakeTx struct {
	customers repository.CustomerRepository
	accounts  repository.AccountRepository
	calls     int
}

func (f *fakeTx) ReadSnapshot(_ context.Context, fn func(repository.CustomerRepository, repository.AccountRepository) error) error {
	f.calls++
	return fn(f.customers, f.accounts)
}

func strPtr(s string) *string { return &s }
