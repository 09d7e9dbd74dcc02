package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// ---------- Mock Querier ----------

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *mockDB) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Rows), args.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

// ---------- Mock Row / Rows ----------

type mockRow struct {
	scanFunc func(dest ...any) error
}

func (m *mockRow) Scan(dest ...any) error {
	return m.scanFunc(dest...)
}

type mockRows struct {
	callIndex int
	scanFuncs []func(dest ...any) error
	err       error
}

func newMockRows(scanFuncs ...func(dest ...any) error) *mockRows {
	return &mockRows{scanFuncs: scanFuncs}
}

func (m *mockRows) Next() bool {
	return m.callIndex < len(m.scanFuncs)
}

func (m *mockRows) Scan(dest ...any) error {
	if m.callIndex < len(m.scanFuncs) {
		fn := m.scanFuncs[m.callIndex]
		m.callIndex++
		return fn(dest...)
	}
	return nil
}

func (m *mockRows) Err() error                                   { return m.err }
func (m *mockRows) Close()                                       {}
func (m *mockRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (m *mockRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (m *mockRows) RawValues() [][]byte                          { return nil }
func (m *mockRows) Values() ([]any, error)                       { return nil, nil }
func (m *mockRows) Conn() *pgx.Conn                              { return nil }

// ---------- Fake Tx ----------

// fakeTx solo implementa lo que usa TxRunner; el resto de pgx.Tx queda sin implementar.
type fakeTx struct {
	pgx.Tx
	*mockDB
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return f.mockDB.Exec(ctx, sql, arguments...)
}

func (f *fakeTx) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	return f.mockDB.Query(ctx, sql, arguments...)
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	return f.mockDB.QueryRow(ctx, sql, arguments...)
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeBeginner struct {
	tx   *fakeTx
	opts pgx.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = opts
	return b.tx, nil
}

// ---------- Scan helpers ----------

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func scanCustomerRow(id, docType string, docNumber, fullName *string, email string) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*string) = id
		*dest[1].(*string) = docType
		*dest[2].(**string) = docNumber
		*dest[3].(**string) = fullName
		*dest[4].(*string) = email
		*dest[5].(*time.Time) = testTime
		return nil
	}
}

func scanAccountRow(id string, number int, status, customerID string) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*string) = id
		*dest[1].(*int) = number
		*dest[2].(*string) = status
		*dest[3].(*string) = customerID
		*dest[4].(*time.Time) = testTime
		return nil
	}
}

func scanCount(n int) *mockRow {
	return &mockRow{scanFunc: func(dest ...any) error {
		*dest[0].(*int) = n
		return nil
	}}
}

func strPtr(s string) *string { return &s }
