package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

// AuditUseCase transición Unaudited -> Audited de un registro a ciegas.
// La transición ocurre exactamente una vez: el constraint único sobre
// registration_id garantiza que dos auditores concurrentes no inserten ambos.
type AuditUseCase struct {
	auditRepo repository.AuditRepository
	regRepo   repository.RegistrationRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditRepository, regRepo repository.RegistrationRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo, regRepo: regRepo}
}

// Audit adjunta la cantidad verificada a un registro. Errores:
// ErrNotFound (registro inexistente), ErrInvalidInput (cantidad negativa),
// ErrAlreadyAudited (segundo intento sobre el mismo registro; nunca se
// sobrescribe en silencio).
func (uc *AuditUseCase) Audit(actorID, actorName string, in dto.AuditRequest) (*dto.AuditResponse, error) {
	if in.ActualQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.RegistrationID == "" {
		return nil, domain.ErrInvalidInput
	}
	reg, err := uc.regRepo.GetByID(in.RegistrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrNotFound
	}
	audit := &entity.Audit{
		ID:             uuid.New().String(),
		RegistrationID: in.RegistrationID,
		ActualQuantity: in.ActualQuantity,
		AuditedBy:      actorID,
		AuditedByName:  actorName,
		CreatedAt:      time.Now(),
	}
	// El insert es el check-and-set atómico: si otro auditor ganó la carrera,
	// el repo devuelve ErrAlreadyAudited por la violación del constraint.
	if err := uc.auditRepo.Create(audit); err != nil {
		return nil, err
	}
	return &dto.AuditResponse{
		ID:             audit.ID,
		RegistrationID: audit.RegistrationID,
		ActualQuantity: audit.ActualQuantity,
		AuditedBy:      audit.AuditedBy,
		AuditedByName:  audit.AuditedByName,
		CreatedAt:      audit.CreatedAt,
	}, nil
}
