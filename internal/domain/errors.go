package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrInvalidStatus = fmt.Errorf("%w: estado de cuenta no permitido", ErrInvalidInput)

	ErrCustomerNotFound = fmt.Errorf("cliente: %w", ErrNotFound)
	ErrAccountNotFound  = fmt.Errorf("cuenta: %w", ErrNotFound)
)
