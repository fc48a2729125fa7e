package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/config"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/handlers"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/middlewares"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

// Register amarra todas as rotas HTTP. O handle do banco é injetado aqui e
// repassado aos handlers; nada de estado global.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	debug := !cfg.IsProd()

	auth := handlers.NewAuthHandler(db, cfg.JWTSecret, debug)
	turmas := handlers.NewTurmaHandler(db, debug)
	disciplinas := handlers.NewDisciplinaHandler(db, debug)
	alunos := handlers.NewAlunoHandler(db, debug)
	professores := handlers.NewProfessorHandler(db, debug)
	matriculas := handlers.NewMatriculaHandler(db, debug)
	notas := handlers.NewNotaHandler(db, debug)
	presencas := handlers.NewPresencaHandler(db, debug)
	boletim := handlers.NewBoletimHandler(db, debug)
	relatorios := handlers.NewRelatorioHandler(turmas, debug)

	e.GET("/health", handlers.Health(db))

	// ===== Público =====
	api := e.Group("/api")
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	// ===== Acadêmico (autenticado) =====
	ac := api.Group("/academico", middlewares.RequireAuth(cfg.JWTSecret))

	profOuAdmin := middlewares.RequireRole(models.TipoProfessor, models.TipoAdmin)
	somenteAdmin := middlewares.RequireRole(models.TipoAdmin)
	somenteAluno := middlewares.RequireRole(models.TipoAluno)

	// Turmas
	ac.POST("/turmas", turmas.Create, profOuAdmin)
	ac.GET("/turmas", turmas.List, profOuAdmin)
	ac.POST("/turmas/com-disciplinas", turmas.CreateComDisciplinas, somenteAdmin)
	ac.PUT("/turmas/atribuir-professor", turmas.AtribuirProfessor, somenteAdmin)
	ac.POST("/turmas/atribuir-professor", turmas.AtribuirProfessor, somenteAdmin)
	ac.POST("/turmas/associar-disciplinas", turmas.AssociarDisciplinas, somenteAdmin)
	ac.POST("/turmas/remover-disciplina", turmas.RemoverDisciplina, somenteAdmin)
	ac.PUT("/turmas/:turmaId/disciplinas/:disciplinaId/professor", turmas.AtribuirProfessorDisciplina, somenteAdmin)
	ac.POST("/turmas/:turmaId/disciplinas/:disciplinaId/professor", turmas.AtribuirProfessorDisciplina, somenteAdmin)
	ac.GET("/turmas/:turmaId/disciplinas/:disciplinaId/alunos", turmas.Alunos, profOuAdmin)
	ac.GET("/turmas/:turmaId/disciplinas/:disciplinaId/ranking", relatorios.Ranking, profOuAdmin)
	ac.GET("/professor/turmas", turmas.MinhasTurmas, profOuAdmin)

	// Disciplinas
	ac.POST("/disciplinas", disciplinas.Create, somenteAdmin)
	ac.GET("/disciplinas", disciplinas.List, profOuAdmin)
	ac.DELETE("/disciplinas/:id", disciplinas.Delete, somenteAdmin)
	ac.DELETE("/disciplinas/:id/notas", disciplinas.DeleteNotas, somenteAdmin)

	// Alunos e diretórios
	ac.POST("/alunos", alunos.Create, profOuAdmin)
	ac.GET("/alunos", alunos.List, somenteAdmin)
	ac.GET("/professores", professores.List, somenteAdmin)

	// Matrículas
	ac.POST("/matriculas", matriculas.Create, profOuAdmin)
	ac.DELETE("/matriculas/:id", matriculas.Delete, somenteAdmin)

	// Notas e presença
	ac.POST("/notas", notas.Create, profOuAdmin)
	ac.POST("/presenca", presencas.Create, profOuAdmin)

	// Boletim (sempre do próprio aluno)
	ac.GET("/boletim", boletim.Get, somenteAluno)
}
