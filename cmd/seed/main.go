// seed carga datos de ejemplo: dos clientes con una cuenta ACTIVE cada uno.
// Es idempotente: un cliente que ya existe (mismo documento) se omite junto con su cuenta.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"os"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Cuentas-api/pkg/config"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
)

var sampleCustomers = []dto.CreateCustomerRequest{
	{DocumentType: "CC", DocumentNumber: strPtr("1234567890"), FullName: strPtr("Juan García López"), Email: "juan.garcia@example.com"},
	{DocumentType: "CE", DocumentNumber: strPtr("9876543210"), FullName: strPtr("María Rodríguez Martínez"), Email: "maria.rodriguez@example.com"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString(), log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	customers := usecase.NewCustomerUseCase(customerRepo, txRunner)
	accounts := usecase.NewAccountUseCase(postgres.NewAccountRepository(pool), customerRepo, txRunner)

	created, err := seed(ctx, customers, accounts, log)
	if err != nil {
		log.Error().Err(err).Msg("seed incompleto")
		os.Exit(1)
	}
	log.Info().Int("clientes_creados", created).Msg("seed terminado")
}

func seed(ctx context.Context, customers *usecase.CustomerUseCase, accounts *usecase.AccountUseCase, log *logger.Logger) (int, error) {
	created := 0
	for _, in := range sampleCustomers {
		c, err := customers.Create(ctx, in)
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("document_number", *in.DocumentNumber).Msg("cliente ya existe, se omite")
			continue
		}
		if err != nil {
			return created, err
		}
		a, err := accounts.Create(ctx, dto.CreateAccountRequest{DocumentNumber: *in.DocumentNumber})
		if err != nil {
			return created, err
		}
		log.Info().Str("customer_id", c.ID).Str("account_id", a.ID).Msg("cliente y cuenta creados")
		created++
	}
	return created, nil
}

func strPtr(s string) *string { return &s }
