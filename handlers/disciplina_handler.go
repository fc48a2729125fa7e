package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type DisciplinaHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewDisciplinaHandler(db *gorm.DB, debug bool) *DisciplinaHandler {
	return &DisciplinaHandler{DB: db, Debug: debug}
}

type disciplinaReq struct {
	Nome      string `json:"nome_disciplina" validate:"required"`
	Descricao string `json:"descricao"`
}

// POST /api/academico/disciplinas (admin)
func (h *DisciplinaHandler) Create(c echo.Context) error {
	var req disciplinaReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	req.Nome = strings.TrimSpace(req.Nome)
	if err := c.Validate(&req); err != nil {
		return err
	}

	disciplina := models.Disciplina{Nome: req.Nome, Descricao: strings.TrimSpace(req.Descricao)}
	if err := h.DB.Create(&disciplina).Error; err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict,
				fmt.Sprintf("Disciplina '%s' já existe.", req.Nome))
		}
		return erroInterno(c, "disciplina.create", err, h.Debug)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":    "Disciplina criada com sucesso!",
		"disciplina": disciplina,
	})
}

// GET /api/academico/disciplinas (professor|admin)
func (h *DisciplinaHandler) List(c echo.Context) error {
	var disciplinas []models.Disciplina
	if err := h.DB.Order("nome ASC").Find(&disciplinas).Error; err != nil {
		return erroInterno(c, "disciplina.list", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Disciplinas carregadas.",
		"disciplinas": disciplinas,
	})
}

// DELETE /api/academico/disciplinas/:id (admin)
// Exclusão bloqueada enquanto houver associação de turma ou matrícula
// apontando para a disciplina.
func (h *DisciplinaHandler) Delete(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de disciplina inválido.")
	}

	var disciplina models.Disciplina
	if err := h.DB.First(&disciplina, id).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Disciplina não encontrada.")
	}

	var assocs, matriculas int64
	if err := h.DB.Model(&models.TurmaDisciplina{}).Where("disciplina_id = ?", id).
		Count(&assocs).Error; err != nil {
		return erroInterno(c, "disciplina.delete", err, h.Debug)
	}
	if err := h.DB.Model(&models.Matricula{}).Where("disciplina_id = ?", id).
		Count(&matriculas).Error; err != nil {
		return erroInterno(c, "disciplina.delete", err, h.Debug)
	}
	if assocs > 0 || matriculas > 0 {
		return erroJSON(c, http.StatusConflict,
			"Não é possível excluir: a disciplina está associada a turmas ou possui matrículas.")
	}

	if err := h.DB.Delete(&disciplina).Error; err != nil {
		// corrida com uma associação criada entre o count e o delete
		if isForeignKeyViolation(err) {
			return erroJSON(c, http.StatusConflict,
				"Não é possível excluir: a disciplina está associada a turmas ou possui matrículas.")
		}
		return erroInterno(c, "disciplina.delete", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Disciplina excluída permanentemente com sucesso!",
	})
}

// DELETE /api/academico/disciplinas/:id/notas (admin)
// Limpeza em massa das notas da disciplina, usada antes da exclusão.
func (h *DisciplinaHandler) DeleteNotas(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de disciplina inválido.")
	}

	var disciplina models.Disciplina
	if err := h.DB.First(&disciplina, id).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Disciplina não encontrada.")
	}

	res := h.DB.Where("disciplina_id = ?", id).Delete(&models.Nota{})
	if res.Error != nil {
		return erroInterno(c, "disciplina.deleteNotas", res.Error, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%d nota(s) da disciplina '%s' excluída(s).",
			res.RowsAffected, disciplina.Nome),
		"removidas": res.RowsAffected,
	})
}
