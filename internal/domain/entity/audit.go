package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Audit representa la verificación de un registro a ciegas: a lo sumo una
// por Registration (constraint único en la DB). Insertar el Audit es lo que
// hace la transición Unaudited -> Audited; no existe columna de estado.
type Audit struct {
	ID             string
	RegistrationID string
	ActualQuantity decimal.Decimal
	AuditedBy      string
	AuditedByName  string
	CreatedAt      time.Time
}
