package handlers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

// bancoDeTeste abre um sqlite em memória com o mesmo esquema e a mesma
// tradução de erros do Connect de produção. Uma conexão só: cada :memory:
// do pool seria um banco diferente.
func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Aluno{},
		&models.Turma{},
		&models.Disciplina{},
		&models.TurmaDisciplina{},
		&models.Matricula{},
		&models.Nota{},
		&models.Presenca{},
	))
	return db
}

type cenarioMatricula struct {
	Aluno      models.Aluno
	Turma      models.Turma
	Disciplina models.Disciplina
	Matricula  models.Matricula
}

// criarMatricula semeia a cadeia completa usuário → aluno → turma →
// disciplina → associação → matrícula.
func criarMatricula(t *testing.T, db *gorm.DB) cenarioMatricula {
	t.Helper()

	usuario := models.User{Email: "joao@exemplo.com", SenhaHash: "x", TipoUsuario: models.TipoAluno}
	require.NoError(t, db.Create(&usuario).Error)

	aluno := models.Aluno{Nome: "João", Sobrenome: "Silva", Email: usuario.Email, UsuarioID: usuario.ID}
	require.NoError(t, db.Create(&aluno).Error)

	turma := models.Turma{Nome: "3A", Ano: 2026}
	require.NoError(t, db.Create(&turma).Error)

	disciplina := models.Disciplina{Nome: "Matemática"}
	require.NoError(t, db.Create(&disciplina).Error)

	require.NoError(t, db.Create(&models.TurmaDisciplina{
		TurmaID:      turma.ID,
		DisciplinaID: disciplina.ID,
	}).Error)

	matricula := models.Matricula{AlunoID: aluno.ID, TurmaID: turma.ID, DisciplinaID: disciplina.ID}
	require.NoError(t, db.Create(&matricula).Error)

	return cenarioMatricula{Aluno: aluno, Turma: turma, Disciplina: disciplina, Matricula: matricula}
}
