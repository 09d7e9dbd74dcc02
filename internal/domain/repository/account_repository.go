package repository

import (
	"context"

	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
)

// AccountFilter criterios para listar cuentas. Los campos vacíos no filtran.
type AccountFilter struct {
	CustomerID    string
	AccountNumber *int
}

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	// UpdateStatus devuelve (nil, nil) si la cuenta no existe.
	UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.Account, error)
	Count(ctx context.Context, filter AccountFilter) (int, error)
	// List devuelve la página ordenada por created_at DESC, con el cliente titular embebido.
	List(ctx context.Context, filter AccountFilter, limit, offset int) ([]*entity.Account, error)
}
