package entity

import "time"

// Store representa una loja (puesto) del mercado. Datos de referencia
// estáticos: se siembran en el bootstrap y no hay CRUD en el flujo normal.
type Store struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
