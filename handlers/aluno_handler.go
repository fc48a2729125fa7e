package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type AlunoHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewAlunoHandler(db *gorm.DB, debug bool) *AlunoHandler {
	return &AlunoHandler{DB: db, Debug: debug}
}

type alunoReq struct {
	UsuarioID      uint   `json:"usuario_id" validate:"required"`
	Nome           string `json:"nome" validate:"required"`
	Sobrenome      string `json:"sobrenome"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD, opcional
}

// POST /api/academico/alunos (professor|admin)
// Cria o perfil para um User já existente com tipo aluno — o caminho usado
// quando o registro não veio pelo autocadastro.
func (h *AlunoHandler) Create(c echo.Context) error {
	var req alunoReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	req.Nome = strings.TrimSpace(req.Nome)
	req.Sobrenome = strings.TrimSpace(req.Sobrenome)
	if err := c.Validate(&req); err != nil {
		return err
	}

	var usuario models.User
	if err := h.DB.First(&usuario, req.UsuarioID).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Usuário não encontrado.")
	}
	if usuario.TipoUsuario != models.TipoAluno {
		return erroJSON(c, http.StatusNotFound, "Usuário não encontrado ou não é aluno.")
	}

	var nascimento *time.Time
	if req.DataNascimento != "" {
		d, err := time.Parse("2006-01-02", req.DataNascimento)
		if err != nil {
			return erroJSON(c, http.StatusBadRequest, "Data de nascimento inválida (use AAAA-MM-DD).")
		}
		nascimento = &d
	}

	aluno := models.Aluno{
		Nome:           req.Nome,
		Sobrenome:      req.Sobrenome,
		Email:          usuario.Email,
		DataNascimento: nascimento,
		UsuarioID:      usuario.ID,
	}
	if err := h.DB.Create(&aluno).Error; err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict, "Este usuário já possui perfil de aluno.")
		}
		return erroInterno(c, "aluno.create", err, h.Debug)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Aluno criado com sucesso!",
		"aluno":   aluno,
	})
}

// GET /api/academico/alunos (admin)
func (h *AlunoHandler) List(c echo.Context) error {
	var alunos []models.Aluno
	if err := h.DB.Order("nome ASC, sobrenome ASC").Find(&alunos).Error; err != nil {
		return erroInterno(c, "aluno.list", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Alunos carregados.",
		"alunos":  alunos,
	})
}
