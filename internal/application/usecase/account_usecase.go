package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// AccountUseCase casos de uso para cuentas.
type AccountUseCase struct {
	accounts  repository.AccountRepository
	customers repository.CustomerRepository
	tx        ReadTxRunner
	now       func() time.Time
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(accounts repository.AccountRepository, customers repository.CustomerRepository, tx ReadTxRunner) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, customers: customers, tx: tx, now: time.Now}
}

// Create abre una cuenta ACTIVE para el cliente con ese document_number.
// La búsqueda del cliente y el insert son dos llamadas independientes (sin transacción).
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByDocumentNumber(ctx, in.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	account := &entity.Account{
		ID: uuid.New().String(),
		// TODO: definir el esquema de numeración de cuentas; hoy todas se crean con 0.
		AccountNumber: 0,
		Status:        entity.AccountStatusActive,
		CustomerID:    customer.ID,
		CreatedAt:     uc.now().UTC(),
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List lista cuentas paginadas, opcionalmente de un titular (document_number)
// y por número de cuenta exacto cuando search empieza por un entero.
func (uc *AccountUseCase) List(ctx context.Context, q dto.AccountListQuery) (*dto.AccountListResponse, error) {
	page := dto.NewPageRequest(q.Page, q.Limit)
	var filter repository.AccountFilter

	if q.DocumentNumber != "" {
		customer, err := uc.customers.GetByDocumentNumber(ctx, q.DocumentNumber)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrCustomerNotFound
		}
		filter.CustomerID = customer.ID
	}
	if q.Search != "" {
		if n, ok := dto.ParseLeadingInt(q.Search); ok {
			filter.AccountNumber = &n
		}
	}

	var (
		total int
		list  []*entity.Account
	)
	err := uc.tx.ReadSnapshot(ctx, func(_ repository.CustomerRepository, accounts repository.AccountRepository) error {
		var err error
		if total, err = accounts.Count(ctx, filter); err != nil {
			return err
		}
		list, err = accounts.List(ctx, filter, page.Limit, page.Offset())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listar cuentas: %w", err)
	}

	data := make([]dto.AccountWithCustomerResponse, 0, len(list))
	for _, a := range list {
		data = append(data, toAccountWithCustomer(a))
	}
	return &dto.AccountListResponse{Data: data, Meta: page.Meta(total)}, nil
}

// UpdateStatus cambia el estado de la cuenta. Cualquier transición ACTIVE<->INACTIVE es válida.
// Un id inexistente o que no es UUID devuelve domain.ErrAccountNotFound.
func (uc *AccountUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateAccountStatusRequest) (*dto.AccountResponse, error) {
	status := entity.AccountStatus(in.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	// uuid.Parse acepta formas (urn:uuid:, llaves) que PostgreSQL rechaza: se usa la canónica.
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	account, err := uc.accounts.UpdateStatus(ctx, parsed.String(), status)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}
