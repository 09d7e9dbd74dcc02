package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	DocumentType   string  `json:"document_type" validate:"required"`
	DocumentNumber *string `json:"document_number,omitempty"`
	FullName       *string `json:"full_name,omitempty"`
	Email          string  `json:"email" validate:"required"`
}

// CustomerListQuery query params de GET /api/customers.
type CustomerListQuery struct {
	Page   string `query:"page"`
	Limit  string `query:"limit"`
	Search string `query:"search"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID             string    `json:"id"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber *string   `json:"document_number"`
	FullName       *string   `json:"full_name"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

// CustomerWithAccountsResponse cliente con sus cuentas (listado).
type CustomerWithAccountsResponse struct {
	CustomerResponse
	Accounts []AccountResponse `json:"accounts"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Data []CustomerWithAccountsResponse `json:"data"`
	Meta PageMeta                       `json:"meta"`
}
