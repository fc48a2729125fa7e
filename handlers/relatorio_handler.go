package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/desempenho"
)

// RelatorioHandler gera o ranking de desempenho de uma turma/disciplina.
// Todo acesso ao banco passa pela consulta de matriculados da TurmaHandler.
type RelatorioHandler struct {
	Turmas *TurmaHandler
	Debug  bool
}

func NewRelatorioHandler(turmas *TurmaHandler, debug bool) *RelatorioHandler {
	return &RelatorioHandler{Turmas: turmas, Debug: debug}
}

type rankingRow struct {
	Posicao    int     `json:"posicao"`
	AlunoID    uint    `json:"aluno_id"`
	Nome       string  `json:"nome"`
	Sobrenome  string  `json:"sobrenome"`
	MediaFinal float64 `json:"media_final"`
}

// GET /api/academico/turmas/:turmaId/disciplinas/:disciplinaId/ranking (professor|admin)
// Ordena os matriculados por média decrescente e devolve também a média
// geral da turma (ponderada por peso 1 por aluno).
func (h *RelatorioHandler) Ranking(c echo.Context) error {
	turmaID, ok := paramUint(c, "turmaId")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de turma inválido.")
	}
	disciplinaID, ok := paramUint(c, "disciplinaId")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de disciplina inválido.")
	}

	alunos, err := h.Turmas.alunosDaTurma(turmaID, disciplinaID)
	if err != nil {
		return erroInterno(c, "relatorio.ranking", err, h.Debug)
	}

	porAluno := make(map[uint]alunoTurmaRow, len(alunos))
	registros := make([]desempenho.DesempenhoAluno, 0, len(alunos))
	medias := make([]float64, 0, len(alunos))
	pesos := make([]float64, 0, len(alunos))
	for _, a := range alunos {
		porAluno[a.AlunoID] = a
		registros = append(registros, desempenho.DesempenhoAluno{
			AlunoID:    a.AlunoID,
			MediaFinal: a.MediaFinal,
		})
		medias = append(medias, a.MediaFinal)
		pesos = append(pesos, 1)
	}

	desempenho.OrdenarPorDesempenho(registros)

	ranking := make([]rankingRow, 0, len(registros))
	for i, r := range registros {
		a := porAluno[r.AlunoID]
		ranking = append(ranking, rankingRow{
			Posicao:    i + 1,
			AlunoID:    a.AlunoID,
			Nome:       a.Nome,
			Sobrenome:  a.Sobrenome,
			MediaFinal: a.MediaFinal,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Ranking de desempenho gerado.",
		"ranking":     ranking,
		"media_turma": arredonda1(desempenho.MediaPonderada(medias, pesos)),
	})
}
