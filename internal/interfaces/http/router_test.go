package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	apphttp "github.com/barcaexpert/pdv-api/internal/interfaces/http"
	"github.com/barcaexpert/pdv-api/pkg/config"
)

// routerApp monta a aplicação com as rotas reais. Handlers nunca são
// alcançados nestes testes (404 ou barreira de auth), então os casos de uso
// podem ficar vazios.
func routerApp(pdv config.PDVConfig, autoLogin *entity.User) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		JWTSecret:     testJWTSecret,
		PDV:           pdv,
		AutoLoginUser: autoLogin,
	})
	return app
}

func routerRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo cliente (PDV_CUSTOMER_MODE)
// ──────────────────────────────────────────────────────────────────────────────

// Com o módulo de clientes desabilitado, as rotas de cliente não existem.
func TestRouter_ModoClienteDesabilitadoRemoveAsRotas(t *testing.T) {
	app := routerApp(config.PDVConfig{CustomerMode: false}, nil)
	token := tokenForRole(t, "admin")

	resp := routerRequest(t, app, http.MethodGet, "/api/customers/", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"/customers não deve existir sem o modo cliente")

	resp2 := routerRequest(t, app, http.MethodPut, "/api/sales/session/customer", token)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode,
		"vincular cliente à venda não deve existir sem o modo cliente")
}

// Com o módulo habilitado as rotas existem (a barreira de auth responde, não
// o 404 do router).
func TestRouter_ModoClienteHabilitadoRegistraAsRotas(t *testing.T) {
	app := routerApp(config.PDVConfig{CustomerMode: true}, nil)

	resp := routerRequest(t, app, http.MethodPut, "/api/sales/session/customer", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := routerRequest(t, app, http.MethodGet, "/api/customers/", "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auto-login (PDV_AUTO_LOGIN)
// ──────────────────────────────────────────────────────────────────────────────

func autoLoginApp(user *entity.User) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AutoLoginMiddleware(user),
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

// Sem token, a requisição entra identificada como o operador do auto-login.
func TestAutoLogin_RequisicaoSemTokenEntraComoAdmin(t *testing.T) {
	admin := &entity.User{ID: 7, Username: "admin", Role: "admin"}
	app := autoLoginApp(admin)

	resp := routerRequest(t, app, http.MethodGet, "/protected", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.UserID)
	assert.Equal(t, "admin", body.Role)
}

// Token presente continua sendo validado normalmente, mesmo com auto-login.
func TestAutoLogin_TokenInvalidoContinuaRejeitado(t *testing.T) {
	admin := &entity.User{ID: 7, Username: "admin", Role: "admin"}
	app := autoLoginApp(admin)

	resp := routerRequest(t, app, http.MethodGet, "/protected", "Bearer token-invalido")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token válido prevalece sobre a identidade do auto-login.
func TestAutoLogin_TokenValidoPrevalece(t *testing.T) {
	admin := &entity.User{ID: 7, Username: "admin", Role: "admin"}
	app := autoLoginApp(admin)

	resp := routerRequest(t, app, http.MethodGet, "/protected", tokenForRole(t, "operador"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, "operador", body.Role)
}
