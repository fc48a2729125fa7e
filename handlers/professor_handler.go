package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

// Professores não têm tabela própria: são Users de tipo professor, então o
// diretório expõe apenas id e email.
type ProfessorHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewProfessorHandler(db *gorm.DB, debug bool) *ProfessorHandler {
	return &ProfessorHandler{DB: db, Debug: debug}
}

type professorRow struct {
	ID    uint   `json:"id_usuario"`
	Email string `json:"email"`
}

// GET /api/academico/professores (admin)
func (h *ProfessorHandler) List(c echo.Context) error {
	var professores []professorRow
	err := h.DB.Model(&models.User{}).
		Select("id, email").
		Where("tipo_usuario = ?", models.TipoProfessor).
		Order("email ASC").
		Scan(&professores).Error
	if err != nil {
		return erroInterno(c, "professor.list", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Professores carregados.",
		"professores": professores,
	})
}
