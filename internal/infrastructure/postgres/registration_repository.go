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

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo implementación del puerto RegistrationRepository sobre
// PostgreSQL. Las filas son inmutables: solo INSERT y SELECT.
type RegistrationRepo struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository construye el adaptador de persistencia para registros.
func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepo {
	return &RegistrationRepo{pool: pool}
}

// Create persiste un registro a ciegas. Producto o loja inexistentes
// (violación de FK) se mapean a ErrNotFound.
func (r *RegistrationRepo) Create(reg *entity.Registration) error {
	query := `
		INSERT INTO registrations (id, product_id, store_id, quantity, registered_by, registered_by_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		reg.ID, reg.ProductID, reg.StoreID, reg.Quantity,
		reg.RegisteredBy, reg.RegisteredByName, reg.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID. (nil, nil) si no existe.
func (r *RegistrationRepo) GetByID(id string) (*entity.Registration, error) {
	query := `
		SELECT id, product_id, store_id, quantity, registered_by, registered_by_name, created_at
		FROM registrations WHERE id = $1`
	var reg entity.Registration
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&reg.ID, &reg.ProductID, &reg.StoreID, &reg.Quantity,
		&reg.RegisteredBy, &reg.RegisteredByName, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return &reg, nil
}

// ListUnaudited devuelve los registros sin auditoría asociada, del más
// antiguo al más nuevo. El estado "auditado" es derivado: la consulta
// excluye por la ausencia de fila en audits, no por un flag.
func (r *RegistrationRepo) ListUnaudited() ([]*entity.UnauditedRegistration, error) {
	query := `
		SELECT r.id, r.product_id, r.store_id, r.quantity,
		       r.registered_by, r.registered_by_name, r.created_at,
		       p.code, p.description, p.unit, s.name
		FROM registrations r
		JOIN products p ON p.id = r.product_id
		JOIN stores s ON s.id = r.store_id
		LEFT JOIN audits a ON a.registration_id = r.id
		WHERE a.id IS NULL
		ORDER BY r.created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list unaudited: %w", err)
	}
	defer rows.Close()
	var list []*entity.UnauditedRegistration
	for rows.Next() {
		var u entity.UnauditedRegistration
		if err := rows.Scan(
			&u.ID, &u.ProductID, &u.StoreID, &u.Quantity,
			&u.RegisteredBy, &u.RegisteredByName, &u.CreatedAt,
			&u.ProductCode, &u.ProductDescription, &u.ProductUnit, &u.StoreName,
		); err != nil {
			return nil, fmt.Errorf("scan unaudited: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
