package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func assinarToken(t *testing.T, secret string, sub uint, tipo string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":          sub,
		"tipo_usuario": tipo,
		"iat":          time.Now().Unix(),
		"exp":          exp.Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func contextoComHeader(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/academico/turmas", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuthTokenValido(t *testing.T) {
	tok := assinarToken(t, testSecret, 42, "professor", time.Now().Add(time.Hour))
	c, rec := contextoComHeader("Bearer " + tok)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireAuth(testSecret)(next)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), c.Get(CtxUserID))
	assert.Equal(t, "professor", c.Get(CtxTipo))
}

func TestRequireAuthRejeicoes(t *testing.T) {
	expirado := assinarToken(t, testSecret, 1, "aluno", time.Now().Add(-time.Minute))
	assinaturaErrada := assinarToken(t, "outro-segredo", 1, "aluno", time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		header string
	}{
		{"sem header", ""},
		{"header sem bearer", "Basic abc"},
		{"token lixo", "Bearer nao-e-um-jwt"},
		{"token expirado", "Bearer " + expirado},
		{"assinatura errada", "Bearer " + assinaturaErrada},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := contextoComHeader(tt.header)
			next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

			err := RequireAuth(testSecret)(next)(c)

			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		tipo     string
		allowed  []string
		wantPass bool
	}{
		{"admin em rota admin", "admin", []string{"admin"}, true},
		{"professor em rota admin", "professor", []string{"admin"}, false},
		{"professor em rota professor|admin", "professor", []string{"professor", "admin"}, true},
		{"aluno em rota professor|admin", "aluno", []string{"professor", "admin"}, false},
		{"sem tipo no contexto", "", []string{"admin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := contextoComHeader("")
			if tt.tipo != "" {
				c.Set(CtxTipo, tt.tipo)
			}
			next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

			err := RequireRole(tt.allowed...)(next)(c)

			if tt.wantPass {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusForbidden, he.Code)
		})
	}
}
