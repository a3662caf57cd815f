package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registration representa un recibimiento registrado a ciegas: la cantidad
// anotada antes de la verificación formal. La fila es inmutable; su estado
// "auditado" se deriva de la existencia de un Audit asociado, nunca de un
// flag almacenado.
//
// RegisteredByName es una copia del username al momento del registro, para
// que la atribución histórica sobreviva al borrado de la cuenta.
type Registration struct {
	ID               string
	ProductID        string
	StoreID          string
	Quantity         decimal.Decimal
	RegisteredBy     string
	RegisteredByName string
	CreatedAt        time.Time
}

// UnauditedRegistration es una Registration enriquecida con los campos de
// presentación de producto y loja, para la selección de candidatos a auditar.
type UnauditedRegistration struct {
	Registration
	ProductCode        string
	ProductDescription string
	ProductUnit        string
	StoreName          string
}
