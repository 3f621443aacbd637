package modelodespesa

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func decodificar(t *testing.T, corpo string) AtualizacaoDTO {
	t.Helper()
	var in AtualizacaoDTO
	if err := json.NewDecoder(strings.NewReader(corpo)).Decode(&in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return in
}

func TestAplicarPreservaCamposAusentes(t *testing.T) {
	diaPagamento := 15
	ancora := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := ModeloDespesa{
		ID:             7,
		Categoria:      "Aluguel",
		Frequencia:     FrequenciaSemestral,
		Valor:          decimal.NewFromInt(1200),
		DiaPagamento:   &diaPagamento,
		LembrarMinutos: 30,
		AutoLembrete:   true,
		AutoInstanciar: true,
		DataAncora:     &ancora,
		Ativo:          true,
	}

	in := decodificar(t, `{"valor":"1350.00"}`)
	if msg := in.aplicar(&m); msg != "" {
		t.Fatalf("aplicar: %s", msg)
	}

	if !m.Valor.Equal(decimal.RequireFromString("1350.00")) {
		t.Errorf("valor = %s", m.Valor)
	}
	if !m.Ativo {
		t.Errorf("corpo parcial desativou o modelo")
	}
	if m.DiaPagamento == nil || *m.DiaPagamento != 15 {
		t.Errorf("corpo parcial apagou o dia de pagamento: %v", m.DiaPagamento)
	}
	if !m.AutoInstanciar || !m.AutoLembrete {
		t.Errorf("corpo parcial desligou auto-instanciar/auto-lembrete")
	}
	if m.Frequencia != FrequenciaSemestral {
		t.Errorf("frequência = %q", m.Frequencia)
	}
	if m.DataAncora == nil || !m.DataAncora.Equal(ancora) {
		t.Errorf("corpo parcial mexeu na âncora: %v", m.DataAncora)
	}
}

func TestAplicarLimpaCampos(t *testing.T) {
	diaPagamento := 15
	fim := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	m := ModeloDespesa{Categoria: "Aluguel", DiaPagamento: &diaPagamento, DataFim: &fim, Ativo: true}

	in := decodificar(t, `{"diaPagamento":0,"dataFim":"","ativo":false}`)
	if msg := in.aplicar(&m); msg != "" {
		t.Fatalf("aplicar: %s", msg)
	}

	if m.DiaPagamento != nil {
		t.Errorf("diaPagamento 0 deveria limpar o campo: %v", m.DiaPagamento)
	}
	if m.DataFim != nil {
		t.Errorf("dataFim vazia deveria limpar o campo: %v", m.DataFim)
	}
	if m.Ativo {
		t.Errorf("ativo=false não foi aplicado")
	}
}

func TestAplicarValida(t *testing.T) {
	tests := []struct {
		nome  string
		corpo string
	}{
		{"frequência desconhecida", `{"frequencia":"Quinzenal"}`},
		{"dia fora do intervalo", `{"diaPagamento":40}`},
		{"data mal formada", `{"dataAncora":"01/01/2025"}`},
		{"categoria vazia", `{"categoria":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			m := ModeloDespesa{Categoria: "Aluguel", Frequencia: FrequenciaMensal, Ativo: true}
			in := decodificar(t, tt.corpo)
			if msg := in.aplicar(&m); msg == "" {
				t.Errorf("corpo %s deveria ser rejeitado", tt.corpo)
			}
		})
	}
}
