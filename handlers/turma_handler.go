package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/middlewares"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

type TurmaHandler struct {
	DB    *gorm.DB
	Debug bool
}

func NewTurmaHandler(db *gorm.DB, debug bool) *TurmaHandler {
	return &TurmaHandler{DB: db, Debug: debug}
}

/* ---------- DTOs ---------- */

type turmaReq struct {
	Nome string `json:"nome_turma" validate:"required"`
	Ano  int    `json:"ano" validate:"required,gte=1900"`
}

type turmaComDisciplinasReq struct {
	Nome          string `json:"nome_turma" validate:"required"`
	Ano           int    `json:"ano" validate:"required,gte=1900"`
	DisciplinaIDs []uint `json:"disciplina_ids"`
}

type atribuirProfessorReq struct {
	TurmaID     uint `json:"turma_id" validate:"required"`
	ProfessorID uint `json:"professor_id" validate:"required"`
}

type associarDisciplinasReq struct {
	TurmaID       uint   `json:"turma_id" validate:"required"`
	DisciplinaIDs []uint `json:"disciplina_ids" validate:"required,min=1"`
}

type removerDisciplinaReq struct {
	TurmaID      uint `json:"turma_id" validate:"required"`
	DisciplinaID uint `json:"disciplina_id" validate:"required"`
}

// buscarProfessor confirma que o alvo existe e tem tipo professor.
func (h *TurmaHandler) buscarProfessor(id uint) (*models.User, error) {
	var usuario models.User
	if err := h.DB.Where("id = ? AND tipo_usuario = ?", id, models.TipoProfessor).
		First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

/* ---------- CRUD ---------- */

// POST /api/academico/turmas (professor|admin)
func (h *TurmaHandler) Create(c echo.Context) error {
	var req turmaReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	req.Nome = strings.TrimSpace(req.Nome)
	if err := c.Validate(&req); err != nil {
		return err
	}

	turma := models.Turma{Nome: req.Nome, Ano: req.Ano}
	if err := h.DB.Create(&turma).Error; err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict,
				fmt.Sprintf("Turma '%s' do ano %d já existe.", req.Nome, req.Ano))
		}
		return erroInterno(c, "turma.create", err, h.Debug)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Turma criada com sucesso!",
		"turma":   turma,
	})
}

// GET /api/academico/turmas (professor|admin)
func (h *TurmaHandler) List(c echo.Context) error {
	var turmas []models.Turma
	if err := h.DB.Order("ano DESC, nome ASC").Find(&turmas).Error; err != nil {
		return erroInterno(c, "turma.list", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Turmas carregadas.",
		"turmas":  turmas,
	})
}

// POST /api/academico/turmas/com-disciplinas (admin)
// Cria a turma e associa as disciplinas informadas numa única transação.
func (h *TurmaHandler) CreateComDisciplinas(c echo.Context) error {
	var req turmaComDisciplinasReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	req.Nome = strings.TrimSpace(req.Nome)
	if err := c.Validate(&req); err != nil {
		return err
	}

	turma := models.Turma{Nome: req.Nome, Ano: req.Ano}
	var resultado associacaoResultado
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&turma).Error; err != nil {
			return err
		}
		r, err := associarDisciplinas(tx, turma.ID, req.DisciplinaIDs)
		if err != nil {
			return err
		}
		resultado = r
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return erroJSON(c, http.StatusConflict,
				fmt.Sprintf("Turma '%s' do ano %d já existe.", req.Nome, req.Ano))
		}
		return erroInterno(c, "turma.createComDisciplinas", err, h.Debug)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":   fmt.Sprintf("Turma criada com %d disciplina(s) associada(s).", resultado.Inseridas),
		"turma":     turma,
		"resultado": resultado,
	})
}

/* ---------- professor ↔ turma / disciplina ---------- */

// PUT /api/academico/turmas/atribuir-professor (admin)
func (h *TurmaHandler) AtribuirProfessor(c echo.Context) error {
	var req atribuirProfessorReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	professor, err := h.buscarProfessor(req.ProfessorID)
	if err != nil {
		return erroJSON(c, http.StatusNotFound, "Professor não encontrado.")
	}

	var turma models.Turma
	if err := h.DB.First(&turma, req.TurmaID).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Turma não encontrada.")
	}

	turma.ProfessorID = &professor.ID
	if err := h.DB.Save(&turma).Error; err != nil {
		return erroInterno(c, "turma.atribuirProfessor", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Professor atribuído à turma com sucesso!",
		"turma":   turma,
	})
}

// PUT|POST /api/academico/turmas/:turmaId/disciplinas/:disciplinaId/professor (admin)
// Atribui um professor específico à disciplina dentro da turma. A associação
// precisa existir antes; o esquema já é fixo em runtime, migrado na subida.
func (h *TurmaHandler) AtribuirProfessorDisciplina(c echo.Context) error {
	turmaID, ok := paramUint(c, "turmaId")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de turma inválido.")
	}
	disciplinaID, ok := paramUint(c, "disciplinaId")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de disciplina inválido.")
	}
	var req struct {
		ProfessorID uint `json:"professor_id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	professor, err := h.buscarProfessor(req.ProfessorID)
	if err != nil {
		return erroJSON(c, http.StatusNotFound, "Professor não encontrado.")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var assoc models.TurmaDisciplina
		if err := tx.Where("turma_id = ? AND disciplina_id = ?", turmaID, disciplinaID).
			First(&assoc).Error; err != nil {
			return err
		}
		assoc.ProfessorID = &professor.ID
		return tx.Save(&assoc).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return erroJSON(c, http.StatusNotFound,
				"Disciplina não está associada a esta turma.")
		}
		return erroInterno(c, "turma.atribuirProfessorDisciplina", err, h.Debug)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Professor atribuído à disciplina com sucesso!",
	})
}

/* ---------- associação de disciplinas ---------- */

type associacaoResultado struct {
	Inseridas    int `json:"inseridas"`
	JaAssociadas int `json:"ja_associadas"`
	Invalidas    int `json:"invalidas"`
}

// associarDisciplinas processa a lista inteira dentro da transação recebida:
// disciplina inexistente conta como inválida, par já existente conta como
// já associada, o resto é inserido. Nunca há commit parcial.
func associarDisciplinas(tx *gorm.DB, turmaID uint, ids []uint) (associacaoResultado, error) {
	var r associacaoResultado
	for _, id := range ids {
		var disciplina models.Disciplina
		if err := tx.First(&disciplina, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				r.Invalidas++
				continue
			}
			return r, err
		}
		var existente models.TurmaDisciplina
		err := tx.Where("turma_id = ? AND disciplina_id = ?", turmaID, id).
			First(&existente).Error
		if err == nil {
			r.JaAssociadas++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return r, err
		}
		if err := tx.Create(&models.TurmaDisciplina{TurmaID: turmaID, DisciplinaID: id}).Error; err != nil {
			return r, err
		}
		r.Inseridas++
	}
	return r, nil
}

// POST /api/academico/turmas/associar-disciplinas (admin)
func (h *TurmaHandler) AssociarDisciplinas(c echo.Context) error {
	var req associarDisciplinasReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var turma models.Turma
	if err := h.DB.First(&turma, req.TurmaID).Error; err != nil {
		return erroJSON(c, http.StatusNotFound, "Turma não encontrada.")
	}

	var resultado associacaoResultado
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		r, err := associarDisciplinas(tx, req.TurmaID, req.DisciplinaIDs)
		if err != nil {
			return err
		}
		resultado = r
		return nil
	})
	if err != nil {
		return erroInterno(c, "turma.associarDisciplinas", err, h.Debug)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": fmt.Sprintf(
			"Associação concluída: %d inserida(s), %d já associada(s), %d inválida(s).",
			resultado.Inseridas, resultado.JaAssociadas, resultado.Invalidas),
		"resultado": resultado,
	})
}

var errDisciplinaComMatriculas = errors.New("disciplina com matrículas ativas")

// POST /api/academico/turmas/remover-disciplina (admin)
// Bloqueia a remoção enquanto existirem matrículas no par; nada de cascata.
func (h *TurmaHandler) RemoverDisciplina(c echo.Context) error {
	var req removerDisciplinaReq
	if err := c.Bind(&req); err != nil {
		return erroJSON(c, http.StatusBadRequest, "Payload inválido.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Checagem e remoção na mesma transação: uma matrícula criada entre o
	// count e o delete não pode passar despercebida.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var assoc models.TurmaDisciplina
		if err := tx.Where("turma_id = ? AND disciplina_id = ?", req.TurmaID, req.DisciplinaID).
			First(&assoc).Error; err != nil {
			return err
		}

		var matriculas int64
		if err := tx.Model(&models.Matricula{}).
			Where("turma_id = ? AND disciplina_id = ?", req.TurmaID, req.DisciplinaID).
			Count(&matriculas).Error; err != nil {
			return err
		}
		if matriculas > 0 {
			return errDisciplinaComMatriculas
		}

		return tx.Delete(&assoc).Error
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return erroJSON(c, http.StatusNotFound, "Disciplina não está associada a esta turma.")
	case errors.Is(err, errDisciplinaComMatriculas):
		return erroJSON(c, http.StatusConflict,
			"Não é possível remover: existem alunos matriculados nesta disciplina da turma.")
	case err != nil:
		return erroInterno(c, "turma.removerDisciplina", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Disciplina desassociada da turma com sucesso!",
	})
}

/* ---------- consultas ---------- */

type alunoTurmaRow struct {
	AlunoID     uint    `json:"aluno_id"`
	Nome        string  `json:"nome"`
	Sobrenome   string  `json:"sobrenome"`
	MatriculaID uint    `json:"matricula_id"`
	NotaNP1     float64 `json:"nota_np1"`
	NotaNP2     float64 `json:"nota_np2"`
	MediaFinal  float64 `json:"media_final"`
}

// alunosDaTurma monta a lista de matriculados do par (turma, disciplina) com
// NP1, NP2 (ausente = 0) e média arredondada a uma casa.
func (h *TurmaHandler) alunosDaTurma(turmaID, disciplinaID uint) ([]alunoTurmaRow, error) {
	type matAluno struct {
		MatriculaID uint
		AlunoID     uint
		Nome        string
		Sobrenome   string
	}
	var mats []matAluno
	err := h.DB.Model(&models.Matricula{}).
		Select("matriculas.id AS matricula_id, alunos.id AS aluno_id, alunos.nome, alunos.sobrenome").
		Joins("JOIN alunos ON alunos.id = matriculas.aluno_id").
		Where("matriculas.turma_id = ? AND matriculas.disciplina_id = ?", turmaID, disciplinaID).
		Order("alunos.nome ASC, alunos.sobrenome ASC").
		Scan(&mats).Error
	if err != nil {
		return nil, err
	}

	rows := make([]alunoTurmaRow, 0, len(mats))
	for _, m := range mats {
		np1, err := h.notaDoAluno(m.AlunoID, disciplinaID, models.AvaliacaoNP1)
		if err != nil {
			return nil, err
		}
		np2, err := h.notaDoAluno(m.AlunoID, disciplinaID, models.AvaliacaoNP2)
		if err != nil {
			return nil, err
		}
		rows = append(rows, alunoTurmaRow{
			AlunoID:     m.AlunoID,
			Nome:        m.Nome,
			Sobrenome:   m.Sobrenome,
			MatriculaID: m.MatriculaID,
			NotaNP1:     np1,
			NotaNP2:     np2,
			MediaFinal:  mediaNP(np1, np2),
		})
	}
	return rows, nil
}

// notaDoAluno devolve o valor lançado ou zero quando não há nota.
func (h *TurmaHandler) notaDoAluno(alunoID, disciplinaID uint, tipo string) (float64, error) {
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

// GET /api/academico/turmas/:turmaId/disciplinas/:disciplinaId/alunos (professor|admin)
func (h *TurmaHandler) Alunos(c echo.Context) error {
	turmaID, ok := paramUint(c, "turmaId")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de turma inválido.")
	}
	disciplinaID, ok := paramUint(c, "disciplinaId")
	if !ok {
		return erroJSON(c, http.StatusBadRequest, "ID de disciplina inválido.")
	}

	rows, err := h.alunosDaTurma(turmaID, disciplinaID)
	if err != nil {
		return erroInterno(c, "turma.alunos", err, h.Debug)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Lista de alunos carregada.",
		"alunos":  rows,
	})
}

type turmaProfessorRow struct {
	TurmaID        uint   `json:"turma_id"`
	NomeTurma      string `json:"nome_turma"`
	Ano            int    `json:"ano"`
	DisciplinaID   uint   `json:"disciplina_id"`
	NomeDisciplina string `json:"nome_disciplina"`
}

// GET /api/academico/professor/turmas (professor|admin)
// Pares (turma, disciplina) onde o chamador é professor de registro, seja
// pelo professor da associação, seja pelo professor padrão da turma.
func (h *TurmaHandler) MinhasTurmas(c echo.Context) error {
	userID, _ := c.Get(middlewares.CtxUserID).(uint)

	var rows []turmaProfessorRow
	err := h.DB.Model(&models.TurmaDisciplina{}).
		Select(`DISTINCT turmas.id AS turma_id, turmas.nome AS nome_turma, turmas.ano,
			disciplinas.id AS disciplina_id, disciplinas.nome AS nome_disciplina`).
		Joins("JOIN turmas ON turmas.id = turma_disciplinas.turma_id").
		Joins("JOIN disciplinas ON disciplinas.id = turma_disciplinas.disciplina_id").
		Where("turma_disciplinas.professor_id = ? OR turmas.professor_id = ?", userID, userID).
		Order("turmas.ano, nome_turma, nome_disciplina").
		Scan(&rows).Error
	if err != nil {
		return erroInterno(c, "turma.minhasTurmas", err, h.Debug)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Suas turmas foram carregadas.",
		"turmas":  rows,
	})
}
