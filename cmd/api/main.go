package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/ceasahub/intake-api/docs"
	"github.com/ceasahub/intake-api/internal/application/auth"
	"github.com/ceasahub/intake-api/internal/application/usecase"
	infrapdf "github.com/ceasahub/intake-api/internal/infrastructure/pdf"
	"github.com/ceasahub/intake-api/internal/infrastructure/postgres"
	"github.com/ceasahub/intake-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/ceasahub/intake-api/internal/interfaces/http"
	"github.com/ceasahub/intake-api/pkg/config"
	"github.com/ceasahub/intake-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	// Cuenta admin y lojas por defecto; idempotente.
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Report.Timezone).Msg("zona horaria del reporte")
	}

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	regRepo := postgres.NewRegistrationRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo)
	registrationUC := usecase.NewRegistrationUseCase(regRepo, storeRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo, regRepo)
	reportUC := usecase.NewReportUseCase(
		reportRepo, productRepo,
		infrapdf.NewMarotoDivergenceGenerator(),
		xmlexport.NewDivergenceExporter(),
		loc,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CEASA Intake API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CatalogUC:      catalogUC,
		RegistrationUC: registrationUC,
		AuditUC:        auditUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
