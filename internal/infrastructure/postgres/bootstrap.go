package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/ceasahub/intake-api/internal/domain/entity"
)

// Credenciales sembradas en el primer arranque. La contraseña se cambia
// desde la propia aplicación tras el primer login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123456"
)

// defaultStores conjunto fijo de lojas del mercado. Datos de referencia:
// no hay CRUD de lojas en el flujo normal.
var defaultStores = []string{
	"Loja 1",
	"Loja 2",
	"Loja 3",
	"Loja 4",
	"Loja 5",
}

// Bootstrap siembra los datos iniciales de forma idempotente: el usuario
// admin por defecto (rol admin, las cuatro pestañas) y el conjunto fijo de
// lojas. Se ejecuta en cada arranque; los ON CONFLICT hacen que re-ejecutar
// no tenga efecto.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de contraseña inicial: %w", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role, permissions)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING`,
		uuid.New().String(), DefaultAdminUsername, string(hash), entity.RoleAdmin, entity.AllPermissions(),
	)
	if err != nil {
		return fmt.Errorf("sembrar admin: %w", err)
	}

	for _, name := range defaultStores {
		_, err := pool.Exec(ctx, `
			INSERT INTO stores (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), name,
		)
		if err != nil {
			return fmt.Errorf("sembrar loja %q: %w", name, err)
		}
	}
	return nil
}
