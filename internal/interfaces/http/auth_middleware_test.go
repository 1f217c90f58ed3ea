package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovi-dev/geslab/internal/domain/entity"
	"github.com/ovi-dev/geslab/internal/infrastructure/memory"
	apphttp "github.com/ovi-dev/geslab/internal/interfaces/http"
	pkgjwt "github.com/ovi-dev/geslab/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "geslab-test"
	testExpMin    = 60
)

// buildTestApp monta la API completa contra repositorios en memoria con un
// usuario admin/secreto registrado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	usuarios := memory.NewUsuarioRepo()
	require.NoError(t, usuarios.Registrar(
		entity.Usuario{ID: "1", Nombre: "Admin", Email: "admin@geslab.local"},
		"admin", "secreto",
	))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Usuarios: usuarios,
		Clientes: memory.NewClienteRepo(memory.SemillaClientes()),
		Muestras: memory.NewMuestraRepo(memory.SemillaMuestras()),
		JWT:      apphttp.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	})
	return app
}

// tokenValido genera un JWT firmado con el secreto de test.
func tokenValido(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "1", "Admin", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body []byte) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
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

// Caso 1: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/clientes/list", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 2: Token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/clientes/list", "Bearer token.invalido.aqui", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 3: Token firmado con otro secreto → HTTP 401.
func TestAuthMiddleware_SecretoIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	tok, err := pkgjwt.Generate("otro-secreto-distinto", "1", "Admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/api/clientes/list", "Bearer "+tok, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token válido → HTTP 200 con la colección.
func TestAuthMiddleware_TokenValido_Pasa(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/clientes/list", tokenValido(t), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var clientes []entity.Cliente
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clientes))
	assert.NotEmpty(t, clientes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de autenticación completo
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_DevuelveToken(t *testing.T) {
	app := buildTestApp(t)
	body, _ := json.Marshal(entity.Credenciales{Usuario: "admin", Password: "secreto"})

	resp := doRequest(t, app, http.MethodPost, "/api/login", "", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["token"])

	// El token emitido debe abrir las rutas protegidas.
	me := doRequest(t, app, http.MethodGet, "/api/me", "Bearer "+out["token"], nil)
	defer me.Body.Close()
	assert.Equal(t, http.StatusOK, me.StatusCode)

	var u entity.Usuario
	require.NoError(t, json.NewDecoder(me.Body).Decode(&u))
	assert.Equal(t, "Admin", u.Nombre)
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	body, _ := json.Marshal(entity.Credenciales{Usuario: "admin", Password: "mala"})

	resp := doRequest(t, app, http.MethodPost, "/api/login", "", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UsuarioDesconocido_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	body, _ := json.Marshal(entity.Credenciales{Usuario: "nadie", Password: "secreto"})

	resp := doRequest(t, app, http.MethodPost, "/api/login", "", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
