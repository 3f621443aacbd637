// internal/modelodespesa/cadencia.go
package modelodespesa

import (
	"fmt"
	"time"
)

// Frequências suportadas, expressas como passo em meses.
const (
	FrequenciaMensal    = "Mensal"
	FrequenciaBimestral = "Bimestral"
	FrequenciaSemestral = "Semestral"
	FrequenciaAnual     = "Anual"
)

// FrequenciaValida informa se o rótulo de frequência é conhecido.
func FrequenciaValida(f string) bool {
	switch f {
	case FrequenciaMensal, FrequenciaBimestral, FrequenciaSemestral, FrequenciaAnual:
		return true
	}
	return false
}

// PassoMeses converte a frequência do modelo no passo em meses (1, 2, 6 ou 12).
func (m *ModeloDespesa) PassoMeses() int {
	switch m.Frequencia {
	case FrequenciaBimestral:
		return 2
	case FrequenciaSemestral:
		return 6
	case FrequenciaAnual:
		return 12
	default:
		return 1
	}
}

// DeveInstanciar decide se a data alvo dispara uma nova despesa para este
// modelo e, em caso positivo, devolve a chave de período usada para
// idempotência. Sem efeitos colaterais; pode ser chamada quantas vezes for
// preciso para a mesma data.
//
// Regras:
//   - modelo inativo, sem dia de pagamento, antes de DataInicio ou depois de
//     DataFim nunca dispara;
//   - o disparo é no dia exato (data.Day() == DiaPagamento), sem ajuste para
//     dia útil ou fim de mês;
//   - para passo > 1, a fase é alinhada pela âncora (DataAncora ou, na falta,
//     a data de criação do modelo): dispara quando a diferença em meses-
//     calendário é não negativa e múltipla do passo.
func (m *ModeloDespesa) DeveInstanciar(data time.Time) (bool, string) {
	if !m.Ativo || m.DiaPagamento == nil {
		return false, ""
	}
	dia := somenteData(data)
	if m.DataInicio != nil && dia.Before(somenteData(*m.DataInicio)) {
		return false, ""
	}
	if m.DataFim != nil && dia.After(somenteData(*m.DataFim)) {
		return false, ""
	}
	if data.Day() != *m.DiaPagamento {
		return false, ""
	}

	if passo := m.PassoMeses(); passo > 1 {
		ancora := m.CreatedAt
		if m.DataAncora != nil {
			ancora = *m.DataAncora
		}
		diffMeses := (data.Year()*12 + int(data.Month())) - (ancora.Year()*12 + int(ancora.Month()))
		if diffMeses < 0 || diffMeses%passo != 0 {
			return false, ""
		}
	}

	return true, m.ChavePeriodo(data)
}

// ChavePeriodo identifica o período de uma instância: "<id>:<AAAA-MM-DD>".
func (m *ModeloDespesa) ChavePeriodo(data time.Time) string {
	return fmt.Sprintf("%d:%s", m.ID, data.Format("2006-01-02"))
}

func somenteData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
