package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, document_type, document_number, full_name, email, created_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, document_type, document_number, full_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, string(customer.DocumentType), customer.DocumentNumber, customer.FullName,
		customer.Email, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByDocumentNumber obtiene un cliente por número de documento.
func (r *CustomerRepo) GetByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE document_number = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by document_number: %w", err)
	}
	return c, nil
}

// Count cuenta los clientes que cumplen el filtro.
func (r *CustomerRepo) Count(ctx context.Context, filter repository.CustomerFilter) (int, error) {
	where, args := customerWhere(filter)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// List devuelve una página de clientes con sus cuentas.
func (r *CustomerRepo) List(ctx context.Context, filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	where, args := customerWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM customers%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	// limit viene del cliente: sin capacidad previa para no reservar memoria por un valor enorme.
	var (
		list []*entity.Customer
		ids  []string
	)
	byID := make(map[string]*entity.Customer)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Accounts = []*entity.Account{}
		list = append(list, c)
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if len(ids) == 0 {
		return []*entity.Customer{}, nil
	}

	accounts, err := r.accountsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if c, ok := byID[a.CustomerID]; ok {
			c.Accounts = append(c.Accounts, a)
		}
	}
	return list, nil
}

// accountsOf carga las cuentas de varios clientes en una sola consulta.
func (r *CustomerRepo) accountsOf(ctx context.Context, customerIDs []string) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = ANY($1::uuid[]) ORDER BY created_at DESC, id`
	rows, err := r.q.Query(ctx, query, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("list customer accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// customerWhere filtro de búsqueda: contiene, sin distinguir mayúsculas, en full_name o document_number.
func customerWhere(filter repository.CustomerFilter) (string, []any) {
	if filter.Search == "" {
		return "", nil
	}
	return ` WHERE (full_name ILIKE $1 OR document_number ILIKE $1)`, []any{containsPattern(filter.Search)}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var docType string
	if err := row.Scan(&c.ID, &docType, &c.DocumentNumber, &c.FullName, &c.Email, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.DocumentType = entity.DocumentType(docType)
	return &c, nil
}
