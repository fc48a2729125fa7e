package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

func TestSignJWTClaims(t *testing.T) {
	h := &AuthHandler{JWTSecret: "segredo-de-teste"}

	assinado, err := h.signJWT(42, "aluno")
	require.NoError(t, err)

	token, err := jwt.Parse(assinado, func(tk *jwt.Token) (any, error) {
		return []byte(h.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["sub"])
	assert.Equal(t, "aluno", claims["tipo_usuario"])

	// expiração de uma hora
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	restante := time.Until(exp.Time)
	assert.Greater(t, restante, 55*time.Minute)
	assert.LessOrEqual(t, restante, time.Hour)
}

func TestRegisterValidacao(t *testing.T) {
	h := NewAuthHandler(nil, "segredo-de-teste", true)

	tests := []struct {
		name string
		body string
	}{
		{"sem email", `{"nome":"Ana","senha":"1234"}`},
		{"email malformado", `{"nome":"Ana","email":"nao-e-email","senha":"1234"}`},
		{"sem senha", `{"nome":"Ana","email":"ana@exemplo.com"}`},
		{"sem nome", `{"email":"ana@exemplo.com","senha":"1234"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := contextoJSON(http.MethodPost, "/api/auth/register", tt.body)

			err := h.Register(c)

			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
		})
	}
}

func TestRegisterTipoInvalido(t *testing.T) {
	h := NewAuthHandler(nil, "segredo-de-teste", true)
	c, rec := contextoJSON(http.MethodPost, "/api/auth/register",
		`{"nome":"Ana","email":"ana@exemplo.com","senha":"1234","tipo_usuario":"diretor"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tipo de usuário inválido")
}

func TestRegisterDataNascimentoInvalida(t *testing.T) {
	h := NewAuthHandler(nil, "segredo-de-teste", true)
	c, rec := contextoJSON(http.MethodPost, "/api/auth/register",
		`{"nome":"Ana","email":"ana@exemplo.com","senha":"1234","data_nascimento":"31/12/2000"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Email repetido responde 409 e a transação não deixa meio-registro: o
// segundo cadastro não cria usuário nem perfil de aluno extra.
func TestRegisterEmailDuplicadoSemMeioRegistro(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewAuthHandler(db, "segredo-de-teste", true)
	corpo := `{"nome":"Ana","sobrenome":"Souza","email":"ana@exemplo.com","senha":"1234"}`

	c, rec := contextoJSON(http.MethodPost, "/api/auth/register", corpo)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = contextoJSON(http.MethodPost, "/api/auth/register", corpo)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email já cadastrado")

	var usuarios, alunos int64
	require.NoError(t, db.Model(&models.User{}).Count(&usuarios).Error)
	require.NoError(t, db.Model(&models.Aluno{}).Count(&alunos).Error)
	assert.EqualValues(t, 1, usuarios)
	assert.EqualValues(t, 1, alunos)
}

func TestLoginCredenciaisInvalidasUniformes(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewAuthHandler(db, "segredo-de-teste", true)

	c, rec := contextoJSON(http.MethodPost, "/api/auth/register",
		`{"nome":"Ana","email":"ana@exemplo.com","senha":"1234"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// email inexistente e senha errada: mesma resposta, mesmo corpo
	tests := []struct {
		name string
		body string
	}{
		{"email inexistente", `{"email":"ninguem@exemplo.com","senha":"1234"}`},
		{"senha errada", `{"email":"ana@exemplo.com","senha":"errada"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := contextoJSON(http.MethodPost, "/api/auth/login", tt.body)

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Credenciais inválidas")
		})
	}
}
