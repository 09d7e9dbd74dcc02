package repository

import (
	"context"

	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
)

// CustomerFilter criterios de búsqueda para listar clientes.
// Search compara sin distinguir mayúsculas contra full_name o document_number (contiene).
type CustomerFilter struct {
	Search string
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create devuelve domain.ErrDuplicate si document_number ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByDocumentNumber devuelve (nil, nil) si no existe.
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Customer, error)
	Count(ctx context.Context, filter CustomerFilter) (int, error)
	// List devuelve la página ordenada por created_at DESC, con las cuentas de cada cliente.
	List(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)
}
