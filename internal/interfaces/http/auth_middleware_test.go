package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceasahub/intake-api/internal/domain/entity"
	apphttp "github.com/ceasahub/intake-api/internal/interfaces/http"
	pkgjwt "github.com/ceasahub/intake-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "maria"
	testIssuer    = "ceasa-intake-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con la cadena completa
// de gates: AuthMiddleware + RequireRole + RequirePermission, y un handler
// dummy que devuelve 200 si pasa todos.
func buildTestApp(tab string, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		apphttp.RequirePermission(tab),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y los permisos indicados.
func tokenFor(t *testing.T, role string, perms []string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, perms, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole + RequirePermission (doble gate)
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: rol permitido y pestaña habilitada → HTTP 200.
func TestGates_AdminConPestanaAccede(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, []string{entity.PermRegister}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin con tab1 debe acceder a la función de registro")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 1b: uno de varios roles permitidos (multi-rol) → HTTP 200.
func TestGates_RegistradorAccedeRutaAdminORegistrador(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin, entity.RoleRegistrador)
	resp := doRequest(t, app, tokenFor(t, entity.RoleRegistrador, []string{entity.PermRegister}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"registrador debe acceder a ruta que permite admin o registrador")
}

// Caso 2: rol no permitido, aunque tenga la pestaña → HTTP 403.
func TestGates_AuditorBloqueadoEnRutaDeRegistro(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin, entity.RoleRegistrador)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAuditor, []string{entity.PermRegister}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"auditor no debe acceder a la función de registro aunque tenga tab1")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: rol permitido pero sin la pestaña habilitada → HTTP 403.
// Tener el rol no otorga la pestaña.
func TestGates_RegistradorSinPestanaBloqueado(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin, entity.RoleRegistrador)
	resp := doRequest(t, app, tokenFor(t, entity.RoleRegistrador, []string{entity.PermAudit}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"registrador sin tab1 no debe acceder a la función de registro")
}

// Caso 3b: admin sin la pestaña también queda bloqueado.
func TestGates_AdminSinPestanaBloqueado(t *testing.T) {
	app := buildTestApp(entity.PermManageUsers, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"admin sin tab4 no debe acceder a la gestión de usuarios")
}

// Caso 4: token con rol vacío → HTTP 401 MISSING_ROLE.
func TestGates_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "", nil, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 5: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestGates_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestGates_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.PermRegister, entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":     apphttp.GetUserID(c),
			"username":    apphttp.GetUsername(c),
			"role":        apphttp.GetRole(c),
			"permissions": apphttp.GetPermissions(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleAuditor, []string{entity.PermAudit, entity.PermReport}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID      string   `json:"user_id"`
		Username    string   `json:"username"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, testUsername, body.Username)
	assert.Equal(t, entity.RoleAuditor, body.Role)
	assert.Equal(t, []string{entity.PermAudit, entity.PermReport}, body.Permissions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, entity.RoleRegistrador,
		[]string{entity.PermRegister}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUsername, claims.Username)
	assert.Equal(t, entity.RoleRegistrador, claims.Role)
	assert.Equal(t, []string{entity.PermRegister}, claims.Permissions)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, entity.RoleAdmin, nil, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, entity.RoleAdmin, nil, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
