package models

import "time"

type Disciplina struct {
	ID        uint      `json:"disciplina_id" gorm:"primaryKey"`
	Nome      string    `json:"nome_disciplina" gorm:"size:120;uniqueIndex;not null"`
	Descricao string    `json:"descricao" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
