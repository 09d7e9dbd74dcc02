package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

var _ usecase.ReadTxRunner = (*TxRunner)(nil)

// TxBeginner lo cumple *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// snapshotOptions: REPEATABLE READ fija una sola instantánea para todas las consultas de la tx.
var snapshotOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// ReadSnapshot abre una transacción de solo lectura, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) ReadSnapshot(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	accounts repository.AccountRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, snapshotOptions)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx), NewAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
