package entity

import "time"

// Product representa un producto del catálogo CEASA.
// Code es único en todo el catálogo; Category (sección) puede estar vacía.
type Product struct {
	ID          string
	Code        string
	Description string
	Category    string // sección; vacío = sin sección
	Unit        string // unidad de medida (ej.: "kg", "cx")
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
