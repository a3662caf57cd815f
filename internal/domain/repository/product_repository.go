package repository

import "github.com/ceasahub/intake-api/internal/domain/entity"

// ProductRepository puerto de persistencia para el catálogo de productos.
// Create devuelve domain.ErrDuplicate si el código ya existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListCategories() ([]string, error)
	Update(product *entity.Product) error
}
