package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver "pgx" para database/sql
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"go.nhat.io/otelsql"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica las migraciones embebidas pendientes (goose).
// La conexión de migración usa el driver pgx envuelto con otelsql: cada sentencia queda
// registrada en el log (nivel debug, warn si falla) con su duración.
func RunMigrations(ctx context.Context, dsn string, zl zerolog.Logger) error {
	tp := newSQLTracerProvider(zl)
	defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()

	// Las migraciones no tienen span padre: AllowRoot hace que cada sentencia abra el suyo.
	driverName, err := otelsql.Register("pgx",
		otelsql.WithTracerProvider(tp),
		otelsql.AllowRoot(),
		otelsql.TraceQueryWithoutArgs(),
		otelsql.WithDatabaseName("cuentas"),
	)
	if err != nil {
		return fmt.Errorf("registrar driver otelsql: %w", err)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{zl: zl.With().Str("component", "goose").Logger()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// gooseLogger adapta goose.Logger a zerolog.
type gooseLogger struct {
	zl zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}
