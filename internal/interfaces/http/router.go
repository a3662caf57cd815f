package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceasahub/intake-api/internal/application/auth"
	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CatalogUC      *usecase.CatalogUseCase
	RegistrationUC *usecase.RegistrationUseCase
	AuditUC        *usecase.AuditUseCase
	ReportUC       *usecase.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo protegido aplica dos
// gates independientes: rol permitido y permiso de pestaña; ambos deben
// pasar, tener el rol no otorga la pestaña ni al revés.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cambio de contraseña: cualquier sesión; el use case decide si puede
	// tocar cuentas ajenas.
	protected.Post("/auth/password", authHandler.ChangePassword)

	// Lojas, catálogo en lectura y calculadora (cualquier sesión)
	registrationHandler := NewRegistrationHandler(deps.RegistrationUC)
	protected.Get("/stores", registrationHandler.Stores)
	productHandler := NewProductHandler(deps.CatalogUC)
	protected.Get("/products", productHandler.List)
	protected.Get("/products/categories", productHandler.Categories)
	toolsHandler := NewToolsHandler()
	protected.Post("/tools/calc", toolsHandler.Calc)

	// Registro a ciegas y mutaciones de catálogo (tab1: admin o registrador)
	register := protected.Group("/",
		RequireRole(entity.RoleAdmin, entity.RoleRegistrador),
		RequirePermission(entity.PermRegister),
	)
	register.Post("/registrations", registrationHandler.Register)
	register.Post("/products", productHandler.Create)
	register.Get("/products/code/:code", productHandler.GetByCode)
	register.Put("/products/:id", productHandler.Update)
	register.Post("/products/import", productHandler.Import)

	// Auditoría (tab2: admin o auditor)
	audit := protected.Group("/",
		RequireRole(entity.RoleAdmin, entity.RoleAuditor),
		RequirePermission(entity.PermAudit),
	)
	auditHandler := NewAuditHandler(deps.AuditUC)
	audit.Get("/registrations/unaudited", registrationHandler.ListUnaudited)
	audit.Post("/audits", auditHandler.Audit)

	// Reportes de divergencia (tab3: cualquier rol con el permiso)
	reports := protected.Group("/reports", RequirePermission(entity.PermReport))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/divergences", reportHandler.Divergences)
	reports.Get("/divergences/pdf", reportHandler.ExportPDF)
	reports.Get("/divergences/xml", reportHandler.ExportXML)
	reports.Get("/filters", reportHandler.Filters)

	// Gestión de usuarios (tab4: solo admin)
	users := protected.Group("/users",
		RequireRole(entity.RoleAdmin),
		RequirePermission(entity.PermManageUsers),
	)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)
	users.Put("/:id/permissions", userHandler.SetPermissions)
}
