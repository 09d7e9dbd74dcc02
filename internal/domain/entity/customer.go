package entity

import "time"

// DocumentType código del tipo de documento de identidad (Colombia).
type DocumentType string

const (
	DocumentTypeCC  DocumentType = "CC"  // Cédula de ciudadanía
	DocumentTypeCE  DocumentType = "CE"  // Cédula de extranjería
	DocumentTypeTI  DocumentType = "TI"  // Tarjeta de identidad
	DocumentTypeNIT DocumentType = "NIT" // Número de identificación tributaria
	DocumentTypePP  DocumentType = "PP"  // Pasaporte
)

// Customer representa un cliente titular de cuentas.
// DocumentNumber y FullName son opcionales; DocumentNumber es único cuando existe.
type Customer struct {
	ID             string
	DocumentType   DocumentType
	DocumentNumber *string
	FullName       *string
	Email          string
	CreatedAt      time.Time
	Accounts       []*Account // solo se carga en listados
}
