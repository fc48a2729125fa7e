package models

import "time"

// Associação turma ↔ disciplina, com professor próprio opcional
// (distinto do professor padrão da turma).
type TurmaDisciplina struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	TurmaID      uint       `json:"turma_id" gorm:"not null;uniqueIndex:idx_turma_disciplina"`
	DisciplinaID uint       `json:"disciplina_id" gorm:"not null;uniqueIndex:idx_turma_disciplina"`
	ProfessorID  *uint      `json:"professor_id"`
	Turma        Turma      `json:"-" gorm:"foreignKey:TurmaID"`
	Disciplina   Disciplina `json:"-" gorm:"foreignKey:DisciplinaID"`
	Professor    *User      `json:"-" gorm:"foreignKey:ProfessorID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (TurmaDisciplina) TableName() string { return "turma_disciplinas" }
