package dto

import "time"

// CreateAccountRequest body para POST /api/accounts.
type CreateAccountRequest struct {
	DocumentNumber string `json:"document_number" validate:"required"`
}

// UpdateAccountStatusRequest body para PATCH /api/accounts/:id/status.
type UpdateAccountStatusRequest struct {
	Status string `json:"status"`
}

// AccountListQuery query params de GET /api/accounts.
// Search solo filtra si empieza por un entero (número de cuenta exacto).
type AccountListQuery struct {
	Page           string `query:"page"`
	Limit          string `query:"limit"`
	DocumentNumber string `query:"document_number"`
	Search         string `query:"search"`
}

// AccountResponse cuenta en respuestas.
type AccountResponse struct {
	ID            string    `json:"id"`
	AccountNumber int       `json:"account_number"`
	Status        string    `json:"status"`
	CustomerID    string    `json:"customer_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountWithCustomerResponse cuenta con su titular embebido (listado).
type AccountWithCustomerResponse struct {
	AccountResponse
	Customer *CustomerResponse `json:"customer"`
}

// AccountListResponse lista paginada de cuentas.
type AccountListResponse struct {
	Data []AccountWithCustomerResponse `json:"data"`
	Meta PageMeta                      `json:"meta"`
}

// AccountStatusResponse respuesta de PATCH /api/accounts/:id/status.
type AccountStatusResponse struct {
	Success bool            `json:"success"`
	Data    AccountResponse `json:"data"`
}
