package models

import "time"

// Perfil de aluno, 1:1 com um User de tipo "aluno".
type Aluno struct {
	ID             uint       `json:"aluno_id" gorm:"primaryKey"`
	Nome           string     `json:"nome" gorm:"size:80;not null"`
	Sobrenome      string     `json:"sobrenome" gorm:"size:80;not null"`
	Email          string     `json:"email" gorm:"size:120;not null"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty" gorm:"type:date"`
	UsuarioID      uint       `json:"usuario_id" gorm:"uniqueIndex;not null"`
	Usuario        User       `json:"-" gorm:"foreignKey:UsuarioID"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
