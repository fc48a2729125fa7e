package models

import "time"

// Matrícula liga um aluno a um par (turma, disciplina).
type Matricula struct {
	ID           uint       `json:"matricula_id" gorm:"primaryKey"`
	AlunoID      uint       `json:"aluno_id" gorm:"not null;uniqueIndex:idx_matricula_unica"`
	TurmaID      uint       `json:"turma_id" gorm:"not null;uniqueIndex:idx_matricula_unica"`
	DisciplinaID uint       `json:"disciplina_id" gorm:"not null;uniqueIndex:idx_matricula_unica"`
	Aluno        Aluno      `json:"-" gorm:"foreignKey:AlunoID"`
	Turma        Turma      `json:"-" gorm:"foreignKey:TurmaID"`
	Disciplina   Disciplina `json:"-" gorm:"foreignKey:DisciplinaID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
