// internal/lembrete/vinculo.go
package lembrete

import "fmt"

// Domínios que podem ser donos de um lembrete.
const (
	DominioRecebimento     = "recebimento"
	DominioDespesaFixa     = "despesa-fixa"
	DominioDespesaVariavel = "despesa-variavel"
)

// Vinculo identifica o registro financeiro dono de um lembrete.
type Vinculo struct {
	Dominio string `json:"dominio"`
	DonoID  uint   `json:"donoId"`
}

// sonda descreve uma verificação de posse em uma tabela dona. A lista é o
// único lugar que conhece os domínios: um quarto domínio dono é uma entrada
// nova aqui, sem tocar nos chamadores.
type sonda struct {
	dominio string
	tabela  string
	artigo  string // "um recebimento", "uma despesa fixa"...
	rotulo  string // nome da tela de onde excluir
}

var sondas = []sonda{
	{DominioRecebimento, "recebimentos", "um recebimento", "Recebimentos"},
	{DominioDespesaFixa, "despesa_fixas", "uma despesa fixa", "Despesas fixas"},
	{DominioDespesaVariavel, "despesa_variavels", "uma despesa variável", "Despesas variáveis"},
}

// MensagemConflito monta a mensagem de bloqueio apontando o caminho correto
// de exclusão.
func MensagemConflito(v *Vinculo) string {
	for _, s := range sondas {
		if s.dominio == v.Dominio {
			return fmt.Sprintf("Este lembrete está vinculado a %s. Exclua-o a partir de %s.", s.artigo, s.rotulo)
		}
	}
	return "Este lembrete está vinculado a um registro financeiro."
}
