package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	apphttp "github.com/tu-usuario/stockmaster/internal/interfaces/http"
	"github.com/tu-usuario/stockmaster/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "stockmaster-test"
	testExpMin    = 60
)

// fakeVault implementa auth.SnapshotStore en memoria para no tocar disco.
type fakeVault struct {
	data map[string]string
}

func newFakeVault() *fakeVault { return &fakeVault{data: map[string]string{}} }

func (f *fakeVault) Get(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeVault) Set(key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeVault) Delete(keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// buildGuardApp construye una app Fiber mínima con los dos guards:
//   - /protected exige sesión activa; /admin además la capacidad create_warehouse
//   - /login es solo-público
func buildGuardApp(store *auth.SessionStore) *fiber.App {
	app := fiber.New()
	requireSession := apphttp.RequireSession(testJWTSecret, store)
	app.Get("/protected", requireSession, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "email": apphttp.SessionFromCtx(c).Email})
	})
	app.Get("/admin", requireSession, apphttp.RequireCapability(entity.CapCreateWarehouse), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/login", apphttp.PublicOnly(testJWTSecret, store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "login"})
	})
	return app
}

// openSession abre una sesión en el store y devuelve el header Authorization.
func openSession(t *testing.T, store *auth.SessionStore, email, name string, role entity.Role) string {
	t.Helper()
	_, err := store.Login(email, name, role)
	require.NoError(t, err)
	tok, err := token.Generate(testJWTSecret, email, name, string(role), testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doGet lanza una petición GET y devuelve la respuesta.
func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession — guard de rutas protegidas
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión, una ruta protegida redirige a /login con 302.
func TestRequireSession_SinSesionRedirigeALogin(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)

	resp := doGet(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Un token firmado de una sesión ya cerrada no alcanza: el guard exige
// que la identidad coincida con la sesión activa del proceso.
func TestRequireSession_TokenSinSesionActivaRedirige(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)

	tok, err := token.Generate(testJWTSecret, "mike.manager@stockmaster.com", "John Manager", "manager", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doGet(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Con sesión activa y token coherente, la ruta protegida responde 200.
func TestRequireSession_ConSesionAccede(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)
	header := openSession(t, store, "sarah.staff@stockmaster.com", "Sarah Staff", entity.RoleStaff)

	resp := doGet(t, app, "/protected", header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "sarah.staff@stockmaster.com")
}

// Un token de otra identidad que la sesión activa se rechaza.
func TestRequireSession_TokenDeOtraIdentidadRedirige(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)
	openSession(t, store, "sarah.staff@stockmaster.com", "Sarah Staff", entity.RoleStaff)

	tok, err := token.Generate(testJWTSecret, "otro@stockmaster.com", "Otro", "staff", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doGet(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// Token malformado → redirige igual que sin token.
func TestRequireSession_TokenInvalidoRedirige(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)

	resp := doGet(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PublicOnly — guard inverso de /login
// ──────────────────────────────────────────────────────────────────────────────

// Con sesión activa, /login redirige a la raíz con 302.
func TestPublicOnly_ConSesionRedirigeARaiz(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)
	header := openSession(t, store, "mike.manager@stockmaster.com", "John Manager", entity.RoleManager)

	resp := doGet(t, app, "/login", header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

// Sin sesión, /login responde normalmente.
func TestPublicOnly_SinSesionAccede(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)

	resp := doGet(t, app, "/login", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability — autorización de grano fino
// ──────────────────────────────────────────────────────────────────────────────

// Staff no tiene create_warehouse: 403 con código FORBIDDEN.
func TestRequireCapability_StaffBloqueadoEnCrearAlmacen(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)
	header := openSession(t, store, "sarah.staff@stockmaster.com", "Sarah Staff", entity.RoleStaff)

	resp := doGet(t, app, "/admin", header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Manager tiene el universo completo: accede.
func TestRequireCapability_ManagerAccede(t *testing.T) {
	store := auth.NewSessionStore(newFakeVault())
	app := buildGuardApp(store)
	header := openSession(t, store, "mike.manager@stockmaster.com", "John Manager", entity.RoleManager)

	resp := doGet(t, app, "/admin", header)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
