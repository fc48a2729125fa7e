package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type MatriculaHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewMatriculaHandler(db *gorm.DB, debug bool) *MatriculaHandler {
	return &MatriculaHandler{DB: db, Debug: debug}
}

type matriculaReq struct {
	AlunoID      uint `json:"aluno_id" validate:"required"`
	TurmaID      uint `json:"turma_id" validate:"required"`
	DisciplinaID uint `json:"disciplina_id" validate:"required"`
}

// POST /api/academico/matriculas (professor|admin)
// A disciplina precisa estar associada à turma antes de qualquer matrícula.
func (h *MatriculaHandler) Create(c echo.Context) error {
	var req matriculaReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var aluno models.Aluno
	if err := h.DB.First(&aluno, req.AlunoID).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Aluno não encontrado.")
	}

	var assoc models.TurmaDisciplina
	if err := h.DB.Where("turma_id = ? AND disciplina_id = ?", req.TurmaID, req.DisciplinaID).
		First(&assoc).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Disciplina não está associada a esta turma.")
	}

	matricula := models.Matricula{
		AlunoID:      req.AlunoID,
		TurmaID:      req.TurmaID,
		DisciplinaID: req.DisciplinaID,
	}
	if err := h.DB.Create(&matricula).Error; err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict,
				"Aluno já matriculado nesta disciplina da turma.")
		}
		if isForeignKeyViolation(err) {
			return erroJSON(c, http.StatusNotFound, "Aluno, turma ou disciplina inexistente.")
		}
		return erroInterno(c, "matricula.create", err, h.Debug)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":   "Aluno matriculado com sucesso!",
		"matricula": matricula,
	})
}

// DELETE /api/academico/matriculas/:id (admin)
// Bloqueada enquanto houver presenças da matrícula ou notas do aluno na
// disciplina; o chamador decide o que limpar primeiro.
func (h *MatriculaHandler) Delete(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de matrícula inválido.")
	}

	var matricula models.Matricula
	if err := h.DB.First(&matricula, id).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Matrícula não encontrada.")
	}

	var presencas, notas int64
	if err := h.DB.Model(&models.Presenca{}).Where("matricula_id = ?", id).
		Count(&presencas).Error; err != nil {
		return erroInterno(c, "matricula.delete", err, h.Debug)
	}
	if err := h.DB.Model(&models.Nota{}).
		Where("aluno_id = ? AND disciplina_id = ?", matricula.AlunoID, matricula.DisciplinaID).
		Count(&notas).Error; err != nil {
		return erroInterno(c, "matricula.delete", err, h.Debug)
	}
	if presencas > 0 || notas > 0 {
		return erroJSON(c, http.StatusConflict,
			"Não é possível excluir: a matrícula possui notas ou presenças registradas.")
	}

	if err := h.DB.Delete(&matricula).Error; err != nil {
		if isForeignKeyViolation(err) {
			return erroJSON(c, http.StatusConflict,
				"Não é possível excluir: a matrícula possui notas ou presenças registradas.")
		}
		return erroInterno(c, "matricula.delete", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Matrícula excluída com sucesso!",
	})
}
