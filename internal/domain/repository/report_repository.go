package repository

import "github.com/ceasahub/intake-api/internal/domain/entity"

// ReportRepository puerto de consulta para el reporte de divergencia.
// Solo registros con auditoría contribuyen filas; los filtros del filter
// componen en AND.
type ReportRepository interface {
	Divergent(filter entity.DivergenceFilter) ([]*entity.DivergenceRow, error)
	// ListRegisteredUsers devuelve los usernames que registraron al menos un
	// recibimiento (del snapshot histórico, no de la tabla de cuentas).
	ListRegisteredUsers() ([]string, error)
}
