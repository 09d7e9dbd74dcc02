package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, account_number, status, customer_id, created_at`

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, account_number, status, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		account.ID, account.AccountNumber, string(account.Status), account.CustomerID, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// UpdateStatus actualiza el estado y devuelve la cuenta resultante.
func (r *AccountRepo) UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (*entity.Account, error) {
	query := `UPDATE accounts SET status = $2 WHERE id = $1 RETURNING ` + accountColumns
	a, err := scanAccount(r.q.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update account status: %w", err)
	}
	return a, nil
}

// Count cuenta las cuentas que cumplen el filtro.
func (r *AccountRepo) Count(ctx context.Context, filter repository.AccountFilter) (int, error) {
	where, args := accountWhere(filter, "")
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return total, nil
}

// List devuelve una página de cuentas con su titular, más recientes primero.
func (r *AccountRepo) List(ctx context.Context, filter repository.AccountFilter, limit, offset int) ([]*entity.Account, error) {
	where, args := accountWhere(filter, "a.")
	query := fmt.Sprintf(`
		SELECT a.id, a.account_number, a.status, a.customer_id, a.created_at,
		       c.id, c.document_type, c.document_number, c.full_name, c.email, c.created_at
		FROM accounts a
		JOIN customers c ON c.id = a.customer_id%s
		ORDER BY a.created_at DESC, a.id
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	list := []*entity.Account{}
	for rows.Next() {
		var (
			a               entity.Account
			c               entity.Customer
			status, docType string
		)
		if err := rows.Scan(
			&a.ID, &a.AccountNumber, &status, &a.CustomerID, &a.CreatedAt,
			&c.ID, &docType, &c.DocumentNumber, &c.FullName, &c.Email, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Status = entity.AccountStatus(status)
		c.DocumentType = entity.DocumentType(docType)
		a.Customer = &c
		list = append(list, &a)
	}
	return list, rows.Err()
}

// accountWhere construye el WHERE con placeholders numerados desde $1.
// El número de cuenta se compara como bigint para no desbordar int4 con búsquedas grandes.
func accountWhere(filter repository.AccountFilter, alias string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("%scustomer_id = $%d", alias, len(args)))
	}
	if filter.AccountNumber != nil {
		args = append(args, int64(*filter.AccountNumber))
		conds = append(conds, fmt.Sprintf("%saccount_number = $%d::bigint", alias, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	var status string
	if err := row.Scan(&a.ID, &a.AccountNumber, &status, &a.CustomerID, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Status = entity.AccountStatus(status)
	return &a, nil
}
