package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditRequest entrada para auditar un registro a ciegas.
type AuditRequest struct {
	RegistrationID string          `json:"registration_id" validate:"required,uuid"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
}

// AuditResponse salida de una auditoría.
type AuditResponse struct {
	ID             string          `json:"id"`
	RegistrationID string          `json:"registration_id"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
	AuditedBy      string          `json:"audited_by"`
	AuditedByName  string          `json:"audited_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
}
