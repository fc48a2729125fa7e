package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type PresencaHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewPresencaHandler(db *gorm.DB, debug bool) *PresencaHandler {
	return &PresencaHandler{DB: db, Debug: debug}
}

type presencaReq struct {
	MatriculaID uint   `json:"matricula_id" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

// POST /api/academico/presenca (professor|admin)
// A data é sempre a do servidor; presença do dia é write-once, a segunda
// marcação cai em 409 com a data na mensagem.
func (h *PresencaHandler) Create(c echo.Context) error {
	var req presencaReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !models.StatusPresencaValido(req.Status) {
		return erroJSON(c, http.StatusBadRequest,
			"Status inválido (use presente ou ausente).")
	}

	var matricula models.Matricula
	if err := h.DB.First(&matricula, req.MatriculaID).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Matrícula não encontrada.")
	}

	hoje := time.Now().Truncate(24 * time.Hour)
	presenca := models.Presenca{
		MatriculaID: req.MatriculaID,
		Data:        hoje,
		Status:      req.Status,
	}
	if err := h.DB.Create(&presenca).Error; err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict,
				fmt.Sprintf("Presença já marcada em %s para esta matrícula.",
					hoje.Format("2006-01-02")))
		}
		if isForeignKeyViolation(err) {
			return erroJSON(c, http.StatusNotFound, "Matrícula não encontrada.")
		}
		return erroInterno(c, "presenca.create", err, h.Debug)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":  fmt.Sprintf("Presença (%s) marcada!", req.Status),
		"presenca": presenca,
	})
}
