// internal/despesafixa/model.go
package despesafixa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status possíveis de uma despesa.
const (
	EstatusPendente = "Pendente"
	EstatusPago     = "Pago"
)

// DespesaFixa é uma despesa recorrente concreta, datada. Quando gerada pelo
// agendador carrega o modelo de origem; lançamentos manuais ficam sem modelo.
type DespesaFixa struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ModeloDespesaID *uint           `gorm:"index:idx_despesa_fixa_periodo" json:"modeloDespesaId"`
	Data            time.Time       `gorm:"type:date;not null;index:idx_despesa_fixa_periodo" json:"data"`
	Hora            string          `gorm:"size:8" json:"hora"`
	Categoria       string          `gorm:"size:120;not null" json:"categoria"`
	Descricao       string          `gorm:"size:255" json:"descricao"`
	Fornecedor      string          `gorm:"size:120" json:"fornecedor"`
	Frequencia      string          `gorm:"size:20;not null;default:'Mensal'" json:"frequencia"`
	Metodo          string          `gorm:"size:30;not null;default:'Dinheiro'" json:"metodo"`
	Valor           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	Estatus         string          `gorm:"size:50;not null;default:'Pendente';index" json:"estatus"`
	LembreteID      *uint           `gorm:"index" json:"lembreteId"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DespesaFixa{})
}
