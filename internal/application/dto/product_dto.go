package dto

import "time"

// CreateProductRequest alta puntual de un producto (flujo "código desconocido").
type CreateProductRequest struct {
	Code        string `json:"code" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Unit        string `json:"unit" validate:"required,min=1"` // ej.: "kg"
}

// UpdateProductRequest edición de un producto existente. Punteros: nil = sin cambio.
// Cubre el ajuste de unidad tras una importación (el archivo no trae unidad).
type UpdateProductRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// ImportRowError error de una fila durante la importación masiva.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportSummary resultado de una importación masiva: las filas fallidas no
// abortan el lote.
type ImportSummary struct {
	Inserted int              `json:"inserted"`
	Skipped  int              `json:"skipped"` // código ya existente: se conserva el dato curado
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// CategoriesResponse categorías para poblar filtros; la primera entrada es
// el centinela "Todas".
type CategoriesResponse struct {
	Items []string `json:"items"`
}
