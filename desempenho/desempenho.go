// Package desempenho reúne os cálculos de ranking e média ponderada usados
// nos relatórios de turma.
package desempenho

import "sort"

// DesempenhoAluno é o par (aluno, média) ordenado nos rankings.
type DesempenhoAluno struct {
	AlunoID    uint    `json:"aluno_id"`
	MediaFinal float64 `json:"media_final"`
}

// MediaPonderada calcula Σ(nota·peso)/Σpeso sobre os pares. Devolve 0 quando
// não há notas ou quando a soma dos pesos é zero.
func MediaPonderada(notas, pesos []float64) float64 {
	n := len(notas)
	if len(pesos) < n {
		n = len(pesos)
	}
	if n <= 0 {
		return 0
	}

	var somaProdutos, somaPesos float64
	for i := 0; i < n; i++ {
		somaProdutos += notas[i] * pesos[i]
		somaPesos += pesos[i]
	}
	if somaPesos == 0 {
		return 0
	}
	return somaProdutos / somaPesos
}

// OrdenarPorDesempenho ordena in-place da maior média para a menor. Médias
// iguais preservam a ordem de entrada.
func OrdenarPorDesempenho(desempenhos []DesempenhoAluno) {
	sort.SliceStable(desempenhos, func(i, j int) bool {
		return desempenhos[i].MediaFinal > desempenhos[j].MediaFinal
	})
}
