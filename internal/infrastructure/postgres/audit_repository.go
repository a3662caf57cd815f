package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceasahub/intake-api/internal/domain"
	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL.
type AuditRepo struct {
	pool *pgxpool.Pool
}

// NewAuditRepository construye el adaptador de persistencia para auditorías.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create persiste una auditoría. El UNIQUE sobre registration_id es el
// check-and-insert atómico: un segundo intento (concurrente o no) devuelve
// ErrAlreadyAudited. Un registration_id inexistente viola la FK -> ErrNotFound.
func (r *AuditRepo) Create(audit *entity.Audit) error {
	query := `
		INSERT INTO audits (id, registration_id, actual_quantity, audited_by, audited_by_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		audit.ID, audit.RegistrationID, audit.ActualQuantity,
		audit.AuditedBy, audit.AuditedByName, audit.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyAudited
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// GetByRegistrationID obtiene la auditoría de un registro. (nil, nil) si no existe.
func (r *AuditRepo) GetByRegistrationID(registrationID string) (*entity.Audit, error) {
	query := `
		SELECT id, registration_id, actual_quantity, audited_by, audited_by_name, created_at
		FROM audits WHERE registration_id = $1`
	var a entity.Audit
	err := r.pool.QueryRow(context.Background(), query, registrationID).Scan(
		&a.ID, &a.RegistrationID, &a.ActualQuantity, &a.AuditedBy, &a.AuditedByName, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit: %w", err)
	}
	return &a, nil
}
