package repository

import "github.com/ceasahub/intake-api/internal/domain/entity"

// RegistrationRepository puerto de persistencia para registros a ciegas.
// Create devuelve domain.ErrNotFound si el producto o la loja no existen
// (violación de FK mapeada en la implementación).
type RegistrationRepository interface {
	Create(reg *entity.Registration) error
	GetByID(id string) (*entity.Registration, error)
	// ListUnaudited devuelve los registros sin auditoría asociada,
	// enriquecidos con los campos de presentación, del más antiguo al más nuevo.
	ListUnaudited() ([]*entity.UnauditedRegistration, error)
}
