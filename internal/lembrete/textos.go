// internal/lembrete/textos.go
package lembrete

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Valores padrão dos lembretes gerados a partir de registros financeiros.
const (
	HoraPadrao           = "09:00"
	LembrarMinutosPadrao = 30
	TipoFinancas         = "financas"
	TipoTrabalho         = "trabalho"
	PrioridadeMedia      = "media"
)

// TituloDespesa monta o título do lembrete de uma despesa.
func TituloDespesa(rotulo string) string {
	return "Pagar " + rotulo
}

// DescricaoDespesa monta a descrição do lembrete de uma despesa a partir dos
// campos do registro dono. Reaproveitada na criação e na sincronização.
func DescricaoDespesa(fornecedor string, valor decimal.Decimal, estatus string) string {
	if fornecedor == "" {
		fornecedor = "-"
	}
	return fmt.Sprintf("Fornecedor: %s | Valor: %s | Status: %s", fornecedor, valor.StringFixed(2), estatus)
}

// TituloRecebimento monta o título do lembrete de um recebimento.
func TituloRecebimento(curso, aluno string) string {
	return strings.TrimSpace(fmt.Sprintf("Início %s - %s", curso, aluno))
}

// DescricaoRecebimento monta a descrição do lembrete de um recebimento.
func DescricaoRecebimento(valor decimal.Decimal, estatus string) string {
	return fmt.Sprintf("Valor: %s | Status: %s", valor.StringFixed(2), estatus)
}
