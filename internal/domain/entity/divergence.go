package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DivergenceRow es una fila del reporte de divergencia: un registro auditado
// con la brecha entre lo registrado a ciegas y lo verificado.
// Divergence = ActualQuantity - RegisteredQuantity (con signo: positivo
// significa que llegó más de lo registrado).
type DivergenceRow struct {
	ProductCode        string
	ProductDescription string
	Category           string
	StoreName          string
	RegisteredQuantity decimal.Decimal
	ActualQuantity     decimal.Decimal
	Divergence         decimal.Decimal
	RegisteredBy       string
	RegisteredAt       time.Time
}

// DivergenceFilter filtros conjuntivos del reporte. Los campos vacíos o nil
// no filtran. Start es inclusivo y End exclusivo (instantes sobre la fecha
// de creación del registro); el use case convierte los días inclusivos del
// usuario a este rango semiabierto.
type DivergenceFilter struct {
	Category string
	User     string
	Start    *time.Time
	End      *time.Time
}
