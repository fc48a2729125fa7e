package models

import "time"

// Tipos de avaliação reconhecidos.
const (
	AvaliacaoNP1   = "NP1"
	AvaliacaoNP2   = "NP2"
	AvaliacaoExame = "Exame"
	AvaliacaoSub   = "Sub"
)

// Nota é única por (aluno, disciplina, tipo); relançar a mesma avaliação
// sobrescreve valor e data (correção, não erro).
type Nota struct {
	ID             uint       `json:"nota_id" gorm:"primaryKey"`
	AlunoID        uint       `json:"aluno_id" gorm:"not null;uniqueIndex:idx_nota_unica"`
	DisciplinaID   uint       `json:"disciplina_id" gorm:"not null;uniqueIndex:idx_nota_unica"`
	TipoAvaliacao  string     `json:"tipo_avaliacao" gorm:"size:10;not null;uniqueIndex:idx_nota_unica"`
	Valor          float64    `json:"valor_nota" gorm:"not null"`
	DataLancamento time.Time  `json:"data_lancamento"`
	Aluno          Aluno      `json:"-" gorm:"foreignKey:AlunoID"`
	Disciplina     Disciplina `json:"-" gorm:"foreignKey:DisciplinaID"`
}

func TipoAvaliacaoValido(t string) bool {
	switch t {
	case AvaliacaoNP1, AvaliacaoNP2, AvaliacaoExame, AvaliacaoSub:
		return true
	}
	return false
}
