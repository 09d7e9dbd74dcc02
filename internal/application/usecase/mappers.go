package usecase

import (
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
)

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:             c.ID,
		DocumentType:   string(c.DocumentType),
		DocumentNumber: c.DocumentNumber,
		FullName:       c.FullName,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
	}
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Status:        string(a.Status),
		CustomerID:    a.CustomerID,
		CreatedAt:     a.CreatedAt,
	}
}

func toCustomerWithAccounts(c *entity.Customer) dto.CustomerWithAccountsResponse {
	accounts := make([]dto.AccountResponse, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		accounts = append(accounts, *toAccountResponse(a))
	}
	return dto.CustomerWithAccountsResponse{
		CustomerResponse: *toCustomerResponse(c),
		Accounts:         accounts,
	}
}

func toAccountWithCustomer(a *entity.Account) dto.AccountWithCustomerResponse {
	return dto.AccountWithCustomerResponse{
		AccountResponse: *toAccountResponse(a),
		Customer:        toCustomerResponse(a.Customer),
	}
}

// emptyToNil trata "" como campo ausente en columnas opcionales.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
