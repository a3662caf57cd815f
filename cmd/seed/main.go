package main

import (
	"context"

	"github.com/ceasahub/intake-api/internal/infrastructure/postgres"
	"github.com/ceasahub/intake-api/pkg/config"
	"github.com/ceasahub/intake-api/pkg/logger"
)

// Aplica las migraciones y siembra la cuenta admin y las lojas por
// defecto sin levantar el servidor. Útil para preparar un entorno nuevo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	log.Info().Msg("esquema y datos iniciales listos")
}
