package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DivergenceQuery filtros del reporte de divergencia (query params).
// Category/User admiten los centinelas "Todas"/"Todos" (equivalen a vacío).
// Start/End en formato YYYY-MM-DD; ambos límites de día son inclusivos.
type DivergenceQuery struct {
	Category string `query:"category"`
	User     string `query:"user"`
	Start    string `query:"start"`
	End      string `query:"end"`
}

// DivergenceRowResponse fila del reporte.
type DivergenceRowResponse struct {
	ProductCode        string          `json:"product_code"`
	ProductDescription string          `json:"product_description"`
	Category           string          `json:"category,omitempty"`
	StoreName          string          `json:"store_name"`
	RegisteredQuantity decimal.Decimal `json:"registered_quantity"`
	ActualQuantity     decimal.Decimal `json:"actual_quantity"`
	Divergence         decimal.Decimal `json:"divergence"` // actual - registrada, con signo
	RegisteredBy       string          `json:"registered_by"`
	RegisteredAt       time.Time       `json:"registered_at"`
}

// DivergenceReportResponse reporte completo.
type DivergenceReportResponse struct {
	Items []DivergenceRowResponse `json:"items"`
}

// ReportFiltersResponse opciones para poblar los selectores del reporte,
// con centinelas "Todas"/"Todos" al frente.
type ReportFiltersResponse struct {
	Categories []string `json:"categories"`
	Users      []string `json:"users"`
}

// CalcRequest entrada de la calculadora rápida.
type CalcRequest struct {
	Expression string `json:"expression" validate:"required"`
}

// CalcResponse resultado de la calculadora rápida.
type CalcResponse struct {
	Result decimal.Decimal `json:"result"`
}
