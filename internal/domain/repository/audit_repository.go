package repository

import "github.com/ceasahub/intake-api/internal/domain/entity"

// AuditRepository puerto de persistencia para auditorías.
// Create devuelve domain.ErrAlreadyAudited si el registro ya tiene auditoría
// (constraint único en registration_id: dos auditores concurrentes no pueden
// insertar ambos) y domain.ErrNotFound si el registro no existe.
type AuditRepository interface {
	Create(audit *entity.Audit) error
	GetByRegistrationID(registrationID string) (*entity.Audit, error)
}
