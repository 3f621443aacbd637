// internal/orcamento/model.go
package orcamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Orcamento é o teto de gastos de um mês (AAAA-MM).
type Orcamento struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Mes       string          `gorm:"size:7;uniqueIndex;not null" json:"mes"`
	Valor     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ResumoMensal compara o orçamento de um mês com o total de despesas.
type ResumoMensal struct {
	Mes               string          `json:"mes"`
	Orcamento         decimal.Decimal `json:"orcamento"`
	DespesasFixas     decimal.Decimal `json:"despesasFixas"`
	DespesasVariaveis decimal.Decimal `json:"despesasVariaveis"`
	Total             decimal.Decimal `json:"total"`
	Saldo             decimal.Decimal `json:"saldo"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Orcamento{})
}
