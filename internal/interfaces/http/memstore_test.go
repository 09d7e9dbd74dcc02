package http_test

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// memStore almacenamiento en memoria con la misma semántica que los repositorios PostgreSQL:
// document_number único, listados más recientes primero.
type memStore struct {
	mu        sync.Mutex
	customers []*entity.Customer
	accounts  []*entity.Account
}

type memCustomers struct{ s *memStore }
type memAccounts struct{ s *memStore }

func (s *memStore) Customers() repository.CustomerRepository { return memCustomers{s} }
func (s *memStore) Accounts() repository.AccountRepository   { return memAccounts{s} }

func (s *memStore) ReadSnapshot(_ context.Context, fn func(repository.CustomerRepository, repository.AccountRepository) error) error {
	return fn(s.Customers(), s.Accounts())
}

func (r memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.DocumentNumber != nil {
		for _, existing := range r.s.customers {
			if existing.DocumentNumber != nil && *existing.DocumentNumber == *c.DocumentNumber {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *c
	r.s.customers = append(r.s.customers, &cp)
	return nil
}

func (r memCustomers) GetByDocumentNumber(_ context.Context, documentNumber string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.DocumentNumber != nil && *c.DocumentNumber == documentNumber {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memCustomers) matches(c *entity.Customer, filter repository.CustomerFilter) bool {
	if filter.Search == "" {
		return true
	}
	needle := strings.ToLower(filter.Search)
	for _, field := range []*string{c.FullName, c.DocumentNumber} {
		if field != nil && strings.Contains(strings.ToLower(*field), needle) {
			return true
		}
	}
	return false
}

func (r memCustomers) Count(_ context.Context, filter repository.CustomerFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, c := range r.s.customers {
		if r.matches(c, filter) {
			n++
		}
	}
	return n, nil
}

func (r memCustomers) List(_ context.Context, filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []*entity.Customer
	for i := len(r.s.customers) - 1; i >= 0; i-- {
		if c := r.s.customers[i]; r.matches(c, filter) {
			cp := *c
			cp.Accounts = []*entity.Account{}
			for j := len(r.s.accounts) - 1; j >= 0; j-- {
				if a := r.s.accounts[j]; a.CustomerID == c.ID {
					ac := *a
					cp.Accounts = append(cp.Accounts, &ac)
				}
			}
			matched = append(matched, &cp)
		}
	}
	return window(matched, limit, offset), nil
}

func (r memAccounts) Create(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.accounts = append(r.s.accounts, &cp)
	return nil
}

func (r memAccounts) UpdateStatus(_ context.Context, id string, status entity.AccountStatus) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.ID == id {
			a.Status = status
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memAccounts) matches(a *entity.Account, filter repository.AccountFilter) bool {
	if filter.CustomerID != "" && a.CustomerID != filter.CustomerID {
		return false
	}
	return filter.AccountNumber == nil || a.AccountNumber == *filter.AccountNumber
}

func (r memAccounts) Count(_ context.Context, filter repository.AccountFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.accounts {
		if r.matches(a, filter) {
			n++
		}
	}
	return n, nil
}

func (r memAccounts) List(_ context.Context, filter repository.AccountFilter, limit, offset int) ([]*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []*entity.Account
	for i := len(r.s.accounts) - 1; i >= 0; i-- {
		if a := r.s.accounts[i]; r.matches(a, filter) {
			cp := *a
			for _, c := range r.s.customers {
				if c.ID == a.CustomerID {
					owner := *c
					cp.Customer = &owner
				}
			}
			matched = append(matched, &cp)
		}
	}
	return window(matched, limit, offset), nil
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// failingTx simula una caída de la base de datos en los listados.
type failingTx struct{ err error }

func (f failingTx) ReadSnapshot(context.Context, func(repository.CustomerRepository, repository.AccountRepository) error) error {
	return f.err
}
