package desempenho

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaPonderada(t *testing.T) {
	tests := []struct {
		name  string
		notas []float64
		pesos []float64
		want  float64
	}{
		{
			name:  "ponderada simples",
			notas: []float64{7.5, 9.0, 6.0},
			pesos: []float64{2.0, 3.0, 5.0},
			want:  7.2, // (15+27+30)/10
		},
		{
			name:  "sem notas",
			notas: nil,
			pesos: nil,
			want:  0,
		},
		{
			name:  "soma de pesos zero",
			notas: []float64{8, 9},
			pesos: []float64{0, 0},
			want:  0,
		},
		{
			name:  "peso unico",
			notas: []float64{6.5},
			pesos: []float64{1},
			want:  6.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MediaPonderada(tt.notas, tt.pesos), 1e-9)
		})
	}
}

func TestOrdenarPorDesempenho(t *testing.T) {
	turma := []DesempenhoAluno{
		{AlunoID: 101, MediaFinal: 8.5},
		{AlunoID: 102, MediaFinal: 6.2},
		{AlunoID: 103, MediaFinal: 9.8},
		{AlunoID: 104, MediaFinal: 7.5},
	}

	OrdenarPorDesempenho(turma)

	medias := make([]float64, len(turma))
	for i, d := range turma {
		medias[i] = d.MediaFinal
	}
	assert.Equal(t, []float64{9.8, 8.5, 7.5, 6.2}, medias)
}

func TestOrdenarPorDesempenhoEmpatePreservaOrdem(t *testing.T) {
	turma := []DesempenhoAluno{
		{AlunoID: 1, MediaFinal: 7.0},
		{AlunoID: 2, MediaFinal: 9.0},
		{AlunoID: 3, MediaFinal: 7.0},
		{AlunoID: 4, MediaFinal: 7.0},
	}

	OrdenarPorDesempenho(turma)

	assert.Equal(t, uint(2), turma[0].AlunoID)
	// empatados mantêm a ordem de entrada
	assert.Equal(t, uint(1), turma[1].AlunoID)
	assert.Equal(t, uint(3), turma[2].AlunoID)
	assert.Equal(t, uint(4), turma[3].AlunoID)
}

func TestOrdenarPorDesempenhoVazioOuUnitario(t *testing.T) {
	OrdenarPorDesempenho(nil)

	um := []DesempenhoAluno{{AlunoID: 9, MediaFinal: 5}}
	OrdenarPorDesempenho(um)
	assert.Equal(t, uint(9), um[0].AlunoID)
}
