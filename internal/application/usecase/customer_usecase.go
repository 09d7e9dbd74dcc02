package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   ReadTxRunner
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx ReadTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create crea un nuevo cliente. document_type y email son obligatorios.
// Un document_number repetido devuelve domain.ErrDuplicate (lo detecta la restricción única).
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		DocumentType:   entity.DocumentType(in.DocumentType),
		DocumentNumber: emptyToNil(in.DocumentNumber),
		FullName:       emptyToNil(in.FullName),
		Email:          in.Email,
		CreatedAt:      uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes paginados, con búsqueda opcional por nombre o documento.
func (uc *CustomerUseCase) List(ctx context.Context, q dto.CustomerListQuery) (*dto.CustomerListResponse, error) {
	page := dto.NewPageRequest(q.Page, q.Limit)
	filter := repository.CustomerFilter{Search: q.Search}

	var (
		total int
		list  []*entity.Customer
	)
	err := uc.tx.ReadSnapshot(ctx, func(customers repository.CustomerRepository, _ repository.AccountRepository) error {
		var err error
		if total, err = customers.Count(ctx, filter); err != nil {
			return err
		}
		list, err = customers.List(ctx, filter, page.Limit, page.Offset())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}

	data := make([]dto.CustomerWithAccountsResponse, 0, len(list))
	for _, c := range list {
		data = append(data, toCustomerWithAccounts(c))
	}
	return &dto.CustomerListResponse{Data: data, Meta: page.Meta(total)}, nil
}
