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

	"github.com/tu-usuario/gestion-ops/internal/domain"
	"github.com/tu-usuario/gestion-ops/internal/domain/entity"
	apphttp "github.com/tu-usuario/gestion-ops/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/gestion-ops/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "gestion-ops-test"
	testExpMin    = 60
)

// fakeUserRepo repositorio en memoria indexado por id.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func testUser(role string, epoch int) *entity.User {
	return &entity.User{
		ID:          testUserID,
		Name:        "Usuaria Test",
		Email:       "test@example.com",
		Role:        role,
		Permissions: entity.DefaultPermissions(role),
		TokenEpoch:  epoch,
	}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y resolver el usuario vivo
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(repo *fakeUserRepo, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			u := apphttp.CurrentUser(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": u.Role,
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el usuario con el epoch indicado.
func tokenFor(t *testing.T, userID, role string, epoch int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, epoch, testIssuer, testExpMin)
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
// Tests AuthMiddleware — resolución del usuario vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido_ResuelveUsuario(t *testing.T) {
	repo := newFakeUserRepo(testUser("admin", 0))
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, tokenFor(t, testUserID, "admin", 0))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// Caso: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	repo := newFakeUserRepo(testUser("admin", 0))
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso: token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	repo := newFakeUserRepo(testUser("admin", 0))
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso: usuario borrado después de emitir el token → HTTP 401 UNKNOWN_USER.
// El token sigue siendo criptográficamente válido pero el usuario ya no existe.
func TestAuthMiddleware_UsuarioBorrado_Retorna401(t *testing.T) {
	repo := newFakeUserRepo() // sin usuarios
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, tokenFor(t, testUserID, "admin", 0))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"usuario inexistente debe quedar revocado por ausencia")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNKNOWN_USER")
}

// Caso: el epoch del token no coincide con el del usuario (permisos cambiados
// después de emitir el token) → HTTP 401 TOKEN_REVOKED.
func TestAuthMiddleware_EpochDesactualizado_Retorna401(t *testing.T) {
	repo := newFakeUserRepo(testUser("gestor", 3))
	app := buildTestApp(repo, "gestor")

	resp := doRequest(t, app, tokenFor(t, testUserID, "gestor", 2))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token con epoch viejo debe quedar revocado")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_REVOKED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole / RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_ColaboradorBloqueadoEnRutaAdmin(t *testing.T) {
	repo := newFakeUserRepo(testUser("colaborador", 0))
	app := buildTestApp(repo, "admin")

	resp := doRequest(t, app, tokenFor(t, testUserID, "colaborador", 0))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"colaborador no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_GestorAccedeRutaAdminOGestor(t *testing.T) {
	repo := newFakeUserRepo(testUser("gestor", 0))
	app := buildTestApp(repo, "admin", "gestor")

	resp := doRequest(t, app, tokenFor(t, testUserID, "gestor", 0))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gestor debe poder acceder a ruta que permite admin o gestor")
}

func TestRequireAdmin_AdminPasa(t *testing.T) {
	repo := newFakeUserRepo(testUser("admin", 0))
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", tokenFor(t, testUserID, "admin", 0))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_GestorBloqueado(t *testing.T) {
	repo := newFakeUserRepo(testUser("gestor", 0))
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", tokenFor(t, testUserID, "gestor", 0))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConEpoch(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "gestor", 5, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "gestor", claims.Role)
	assert.Equal(t, 5, claims.Epoch)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", 0, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", 0, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
