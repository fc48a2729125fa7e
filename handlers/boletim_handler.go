package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/middlewares"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type BoletimHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewBoletimHandler(db *gorm.DB, debug bool) *BoletimHandler {
	return &BoletimHandler{DB: db, Debug: debug}
}

type boletimRow struct {
	NomeDisciplina string  `json:"nome_disciplina"`
	NotaNP1        float64 `json:"nota_np1"`
	NotaNP2        float64 `json:"nota_np2"`
	MediaFinal     float64 `json:"media_final"`
	TotalFaltas    int64   `json:"total_faltas"`
}

// GET /api/academico/boletim (aluno)
// Sempre do próprio aluno: o id vem do token, nunca da query. Uma linha por
// disciplina matriculada, média simples de NP1/NP2 com nota ausente valendo
// zero, e contagem de faltas da matrícula.
func (h *BoletimHandler) Get(c echo.Context) error {
	userID, _ := c.Get(middlewares.CtxUserID).(uint)

	var aluno models.Aluno
	if err := h.DB.Where("usuario_id = ?", userID).First(&aluno).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Perfil de aluno não encontrado.")
	}

	type matDisc struct {
		MatriculaID    uint
		DisciplinaID   uint
		NomeDisciplina string
	}
	var mats []matDisc
	err := h.DB.Model(&models.Matricula{}).
		Select("matriculas.id AS matricula_id, disciplinas.id AS disciplina_id, disciplinas.nome AS nome_disciplina").
		Joins("JOIN disciplinas ON disciplinas.id = matriculas.disciplina_id").
		Where("matriculas.aluno_id = ?", aluno.ID).
		Order("disciplinas.nome ASC").
		Scan(&mats).Error
	if err != nil {
		return erroInterno(c, "boletim.get", err, h.Debug)
	}

	boletim := make([]boletimRow, 0, len(mats))
	for _, m := range mats {
		np1, err := h.nota(aluno.ID, m.DisciplinaID, models.AvaliacaoNP1)
		if err != nil {
			return erroInterno(c, "boletim.get", err, h.Debug)
		}
		np2, err := h.nota(aluno.ID, m.DisciplinaID, models.AvaliacaoNP2)
		if err != nil {
			return erroInterno(c, "boletim.get", err, h.Debug)
		}

		var faltas int64
		if err := h.DB.Model(&models.Presenca{}).
			Where("matricula_id = ? AND status = ?", m.MatriculaID, models.StatusAusente).
			Count(&faltas).Error; err != nil {
			return erroInterno(c, "boletim.get", err, h.Debug)
		}

		boletim = append(boletim, boletimRow{
			NomeDisciplina: m.NomeDisciplina,
			NotaNP1:        np1,
			NotaNP2:        np2,
			MediaFinal:     mediaNP(np1, np2),
			TotalFaltas:    faltas,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Boletim carregado.",
		"boletim": boletim,
	})
}

func (h *BoletimHandler) nota(alunoID, disciplinaID uint, tipo string) (float64, error) {
	var nota models.Nota
	err := h.DB.Where("aluno_id = ? AND disciplina_id = ? AND tipo_avaliacao = ?",
		alunoID, disciplinaID, tipo).First(&nota).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return nota.Valor, nil
}
