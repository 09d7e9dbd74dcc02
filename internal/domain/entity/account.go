package entity

import "time"

// AccountStatus estado de una cuenta. No hay transiciones restringidas entre valores.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Valid indica si el estado es uno de los permitidos.
func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}

// Account cuenta de un cliente. El titular (CustomerID) no cambia después de creada.
type Account struct {
	ID            string
	AccountNumber int
	Status        AccountStatus
	CustomerID    string
	CreatedAt     time.Time
	Customer      *Customer // solo se carga en listados
}
