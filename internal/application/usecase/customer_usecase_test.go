package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

func newCustomerUC() (*CustomerUseCase, *mockCustomerRepo, *fakeTx) {
	repo := &mockCustomerRepo{}
	tx := &fakeTx{customers: repo, accounts: &mockAccountRepo{}}
	uc := NewCustomerUseCase(repo, tx)
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc, repo, tx
}

func TestCustomerCreate_CamposObligatorios(t *testing.T) {
	uc, repo, _ := newCustomerUC()

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin document_type")

	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{DocumentType: "CC"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin email")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerCreate_OK(t *testing.T) {
	uc, repo, _ := newCustomerUC()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.DocumentType == entity.DocumentTypeCC && c.Email == "a@x.com" &&
			c.DocumentNumber != nil && *c.DocumentNumber == "123" && c.FullName == nil && c.ID != ""
	})).Return(nil)

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		DocumentType:   "CC",
		DocumentNumber: strPtr("123"),
		FullName:       strPtr(""),
		Email:          "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "CC", out.DocumentType)
	assert.Equal(t, "123", *out.DocumentNumber)
	assert.Nil(t, out.FullName, "full_name vacío se guarda como null")
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), out.CreatedAt)
	repo.AssertExpectations(t)
}

func TestCustomerCreate_Duplicado(t *testing.T) {
	uc, repo, _ := newCustomerUC()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{DocumentType: "CC", DocumentNumber: strPtr("1"), Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerList_DefaultsYMeta(t *testing.T) {
	uc, repo, tx := newCustomerUC()
	list := []*entity.Customer{
		{ID: "c1", DocumentType: "CC", Email: "a@x.com", Accounts: []*entity.Account{{ID: "a1", Status: entity.AccountStatusActive, CustomerID: "c1"}}},
		{ID: "c2", DocumentType: "CE", Email: "b@x.com"},
	}
	repo.On("Count", mock.Anything, repository.CustomerFilter{}).Return(12, nil)
	repo.On("List", mock.Anything, repository.CustomerFilter{}, 10, 0).Return(list, nil)

	out, err := uc.List(context.Background(), dto.CustomerListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls, "conteo y página en una sola transacción")
	assert.Equal(t, dto.PageMeta{Total: 12, Page: 1, LastPage: 2}, out.Meta)
	require.Len(t, out.Data, 2)
	assert.Len(t, out.Data[0].Accounts, 1)
	assert.NotNil(t, out.Data[1].Accounts, "accounts se serializa como [] y no null")
	assert.Empty(t, out.Data[1].Accounts)
}

func TestCustomerList_BusquedaYPagina(t *testing.T) {
	uc, repo, _ := newCustomerUC()
	filter := repository.CustomerFilter{Search: "garcía"}
	repo.On("Count", mock.Anything, filter).Return(5, nil)
	repo.On("List", mock.Anything, filter, 2, 4).Return([]*entity.Customer{}, nil)

	out, err := uc.List(context.Background(), dto.CustomerListQuery{Page: "3", Limit: "2", Search: "garcía"})
	require.NoError(t, err)
	assert.Equal(t, dto.PageMeta{Total: 5, Page: 3, LastPage: 3}, out.Meta)
	assert.Empty(t, out.Data)
	repo.AssertExpectations(t)
}

func TestCustomerList_ErrorDePersistencia(t *testing.T) {
	uc, repo, _ := newCustomerUC()
	boom := errors.New("conexión perdida")
	repo.On("Count", mock.Anything, mock.Anything).Return(0, boom)

	_, err := uc.List(context.Background(), dto.CustomerListQuery{})
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
