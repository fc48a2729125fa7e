package models

import "time"

const (
	StatusPresente = "presente"
	StatusAusente  = "ausente"
)

// Presença é única por (matrícula, data): um registro por dia, sem
// sobrescrita — diferente de Nota, marcar duas vezes é conflito.
type Presenca struct {
	ID          uint      `json:"presenca_id" gorm:"primaryKey"`
	MatriculaID uint      `json:"matricula_id" gorm:"not null;uniqueIndex:idx_presenca_dia"`
	Data        time.Time `json:"data" gorm:"type:date;not null;uniqueIndex:idx_presenca_dia"`
	Status      string    `json:"status" gorm:"size:10;not null"` // presente | ausente
	Matricula   Matricula `json:"-" gorm:"foreignKey:MatriculaID"`
	CreatedAt   time.Time `json:"created_at"`
}

func StatusPresencaValido(s string) bool {
	return s == StatusPresente || s == StatusAusente
}
