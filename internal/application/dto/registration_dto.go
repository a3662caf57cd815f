package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterBlindRequest entrada para registrar un recibimiento a ciegas.
type RegisterBlindRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	StoreID   string          `json:"store_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// RegistrationResponse salida de un registro a ciegas.
type RegistrationResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	StoreID          string          `json:"store_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	RegisteredBy     string          `json:"registered_by"`
	RegisteredByName string          `json:"registered_by_name"`
	CreatedAt        time.Time       `json:"created_at"`
}

// UnauditedRegistrationResponse registro pendiente de auditoría con los
// campos de presentación para la selección de candidatos.
type UnauditedRegistrationResponse struct {
	ID                 string          `json:"id"`
	ProductCode        string          `json:"product_code"`
	ProductDescription string          `json:"product_description"`
	ProductUnit        string          `json:"product_unit"`
	StoreName          string          `json:"store_name"`
	Quantity           decimal.Decimal `json:"quantity"`
	RegisteredByName   string          `json:"registered_by_name"`
	CreatedAt          time.Time       `json:"created_at"`
}

// UnauditedListResponse listado de registros pendientes de auditoría.
type UnauditedListResponse struct {
	Items []UnauditedRegistrationResponse `json:"items"`
}

// StoreResponse salida de una loja.
type StoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreListResponse listado de lojas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
}
