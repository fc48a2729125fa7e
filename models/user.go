package models

import "time"

// Papéis reconhecidos pelo sistema.
const (
	TipoAluno     = "aluno"
	TipoProfessor = "professor"
	TipoAdmin     = "admin"
)

type User struct {
	ID          uint      `json:"id_usuario" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	SenhaHash   string    `json:"-" gorm:"not null"`
	TipoUsuario string    `json:"tipo_usuario" gorm:"size:20;not null"` // aluno | professor | admin
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func TipoValido(t string) bool {
	return t == TipoAluno || t == TipoProfessor || t == TipoAdmin
}
