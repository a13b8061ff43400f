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

	apphttp "github.com/tu-usuario/facturas-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/facturas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "usuario@example.com"
	testIssuer    = "facturas-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware
// y un handler dummy que devuelve 200 si el token es válido.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// validToken genera un JWT firmado con el secret de test.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testIssuer, testExpMin)
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
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido → HTTP 200.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un token válido debe dejar pasar la petición")
}

// Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN",
		"la respuesta de error debe incluir el código MISSING_TOKEN")
}

// Header sin esquema Bearer → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret → HTTP 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
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
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}
