package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/config"
	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

// Connect abre o pool e aplica as migrações uma única vez, na subida do
// processo. O handle é devolvido ao chamador e injetado nos handlers;
// nenhum estado de conexão fica em variável de pacote.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Aluno{},
		&models.Turma{},
		&models.Disciplina{},
		&models.TurmaDisciplina{},
		&models.Matricula{},
		&models.Nota{},
		&models.Presenca{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	return db
}
