package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Debug     bool
}

func NewAuthHandler(db *gorm.DB, secret string, debug bool) *AuthHandler {
	return &AuthHandler{DB: db, JWTSecret: secret, Debug: debug}
}

const tokenTTL = time.Hour

func (h *AuthHandler) signJWT(sub uint, tipo string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          sub,
		"tipo_usuario": tipo,
		"iat":          now.Unix(),
		"exp":          now.Add(tokenTTL).Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

/* ---------- DTOs ---------- */

type registerReq struct {
	Nome           string `json:"nome" validate:"required"`
	Sobrenome      string `json:"sobrenome"`
	Email          string `json:"email" validate:"required,email"`
	Senha          string `json:"senha" validate:"required,min=4"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD, opcional
	TipoUsuario    string `json:"tipo_usuario"`
}

type loginReq struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

/* ---------- Handlers ---------- */

// POST /api/auth/register
// Cria o User e, quando o tipo é aluno, o perfil de Aluno na mesma
// transação: ou os dois entram, ou nenhum.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Nome = strings.TrimSpace(req.Nome)
	req.Sobrenome = strings.TrimSpace(req.Sobrenome)
	if err := c.Validate(&req); err != nil {
		return err
	}

	tipo := strings.ToLower(strings.TrimSpace(req.TipoUsuario))
	if tipo == "" {
		tipo = models.TipoAluno
	}
	if !models.TipoValido(tipo) {
		return erroJSON(c, http.StatusBadRequest, "Tipo de usuário inválido.")
	}

	var nascimento *time.Time
	if req.DataNascimento != "" {
		d, err := time.Parse("2006-01-02", req.DataNascimento)
		if err != nil {
			return erroJSON(c, http.StatusBadRequest, "Data de nascimento inválida (use AAAA-MM-DD).")
		}
		nascimento = &d
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return erroInterno(c, "auth.register", err, h.Debug)
	}

	usuario := models.User{Email: req.Email, SenhaHash: string(hash), TipoUsuario: tipo}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usuario).Error; err != nil {
			return err
		}
		if tipo == models.TipoAluno {
			aluno := models.Aluno{
				Nome:           req.Nome,
				Sobrenome:      req.Sobrenome,
				Email:          req.Email,
				DataNascimento: nascimento,
				UsuarioID:      usuario.ID,
			}
			if err := tx.Create(&aluno).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict, "Email já cadastrado.")
		}
		return erroInterno(c, "auth.register", err, h.Debug)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Usuário registrado com sucesso!",
		"usuario": map[string]any{
			"id_usuario":   usuario.ID,
			"email":        usuario.Email,
			"tipo_usuario": usuario.TipoUsuario,
		},
	})
}

// POST /api/auth/login
// Email inexistente e senha errada respondem a mesma coisa, para não
// denunciar quais emails existem.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var usuario models.User
	if err := h.DB.Where("email = ?", email).First(&usuario).Error; err != nil {
		return erroJSON(c, http.StatusUnauthorized, "Credenciais inválidas.")
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)) != nil {
		return erroJSON(c, http.StatusUnauthorized, "Credenciais inválidas.")
	}

	token, err := h.signJWT(usuario.ID, usuario.TipoUsuario)
	if err != nil {
		return erroInterno(c, "auth.login", err, h.Debug)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login realizado com sucesso!",
		"token":   token,
		"usuario": map[string]any{
			"id_usuario":   usuario.ID,
			"email":        usuario.Email,
			"tipo_usuario": usuario.TipoUsuario,
		},
	})
}
