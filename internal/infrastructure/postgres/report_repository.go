package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceasahub/intake-api/internal/domain/entity"
	"github.com/ceasahub/intake-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del reporte de divergencia.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de consulta para reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Divergent ejecuta el join Registration ⋈ Audit ⋈ Product ⋈ Store.
// Solo registros auditados aparecen (INNER JOIN con audits); la divergencia
// se calcula en SQL con signo (actual - registrada). Orden: mayor
// divergencia absoluta primero, el criterio del reporte original.
func (r *ReportRepo) Divergent(filter entity.DivergenceFilter) ([]*entity.DivergenceRow, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.code, p.description, COALESCE(p.category, ''), s.name,
		       reg.quantity, a.actual_quantity,
		       a.actual_quantity - reg.quantity AS divergence,
		       reg.registered_by_name, reg.created_at
		FROM registrations reg
		JOIN audits a ON a.registration_id = reg.id
		JOIN products p ON p.id = reg.product_id
		JOIN stores s ON s.id = reg.store_id
		WHERE 1=1`)

	args := []any{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&sb, " AND p.category = $%d", len(args))
	}
	if filter.User != "" {
		args = append(args, filter.User)
		fmt.Fprintf(&sb, " AND reg.registered_by_name = $%d", len(args))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		fmt.Fprintf(&sb, " AND reg.created_at >= $%d", len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		fmt.Fprintf(&sb, " AND reg.created_at < $%d", len(args))
	}
	sb.WriteString(" ORDER BY ABS(a.actual_quantity - reg.quantity) DESC, reg.created_at")

	rows, err := r.pool.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query divergent: %w", err)
	}
	defer rows.Close()

	var list []*entity.DivergenceRow
	for rows.Next() {
		var d entity.DivergenceRow
		if err := rows.Scan(
			&d.ProductCode, &d.ProductDescription, &d.Category, &d.StoreName,
			&d.RegisteredQuantity, &d.ActualQuantity, &d.Divergence,
			&d.RegisteredBy, &d.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("scan divergence row: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListRegisteredUsers devuelve los usernames (snapshot histórico) que
// registraron al menos un recibimiento. Sobrevive al borrado de cuentas.
func (r *ReportRepo) ListRegisteredUsers() ([]string, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT DISTINCT registered_by_name FROM registrations ORDER BY registered_by_name`)
	if err != nil {
		return nil, fmt.Errorf("list registered users: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		list = append(list, name)
	}
	return list, rows.Err()
}
