package models

import "time"

type Turma struct {
	ID          uint      `json:"turma_id" gorm:"primaryKey"`
	Nome        string    `json:"nome_turma" gorm:"size:80;not null;uniqueIndex:idx_turmas_nome_ano"`
	Ano         int       `json:"ano" gorm:"not null;uniqueIndex:idx_turmas_nome_ano"`
	ProfessorID *uint     `json:"professor_id"` // professor padrão da turma (opcional)
	Professor   *User     `json:"-" gorm:"foreignKey:ProfessorID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
