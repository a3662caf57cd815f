package repository

import "github.com/ceasahub/intake-api/internal/domain/entity"

// StoreRepository puerto de lectura para lojas (datos de referencia sembrados).
type StoreRepository interface {
	GetByID(id string) (*entity.Store, error)
	List() ([]*entity.Store, error)
}
