package usecase

import (
	"context"

	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// ReadTxRunner ejecuta fn dentro de una transacción de solo lectura con una vista consistente,
// para que el conteo y la página de un listado salgan de la misma instantánea.
type ReadTxRunner interface {
	ReadSnapshot(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		accounts repository.AccountRepository,
	) error) error
}
