package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type NotaHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewNotaHandler(db *gorm.DB, debug bool) *NotaHandler {
	return &NotaHandler{DB: db, Debug: debug}
}

type notaReq struct {
	AlunoID       uint     `json:"aluno_id" validate:"required"`
	DisciplinaID  uint     `json:"disciplina_id" validate:"required"`
	Valor         *float64 `json:"valor_nota" validate:"required"`
	TipoAvaliacao string   `json:"tipo_avaliacao" validate:"required"`
}

// POST /api/academico/notas (professor|admin)
// Upsert por (aluno, disciplina, tipo): relançar a mesma avaliação é
// correção e sobrescreve valor e data — ao contrário da presença.
func (h *NotaHandler) Create(c echo.Context) error {
	var req notaReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !models.TipoAvaliacaoValido(req.TipoAvaliacao) {
		return erroJSON(c, http.StatusBadRequest,
			"Tipo de avaliação inválido (use NP1, NP2, Exame ou Sub).")
	}
	if *req.Valor < 0 || *req.Valor > 10 {
		return erroJSON(c, http.StatusBadRequest, "Nota deve estar entre 0 e 10.")
	}

	// Sem matrícula não há lançamento: impede nota para aluno fora da disciplina.
	var matricula models.Matricula
	if err := h.DB.Where("aluno_id = ? AND disciplina_id = ?", req.AlunoID, req.DisciplinaID).
		First(&matricula).Error; err != nil {
		return erroJSON(c, http.StatusNotFound,
			"Aluno não está matriculado nesta disciplina.")
	}

	// Upsert de verdade, resolvido no banco: dois lançamentos simultâneos do
	// mesmo (aluno, disciplina, tipo) não disputam um read-then-write.
	agora := time.Now()
	nota := models.Nota{
		AlunoID:        req.AlunoID,
		DisciplinaID:   req.DisciplinaID,
		TipoAvaliacao:  req.TipoAvaliacao,
		Valor:          *req.Valor,
		DataLancamento: agora,
	}
	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "aluno_id"}, {Name: "disciplina_id"}, {Name: "tipo_avaliacao"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"valor":           *req.Valor,
			"data_lancamento": agora,
		}),
	}).Create(&nota).Error
	if err != nil {
		return erroInterno(c, "nota.create", err, h.Debug)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Nota lançada/atualizada com sucesso!",
	})
}
