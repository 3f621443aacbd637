// internal/modelodespesa/model.go
package modelodespesa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ModeloDespesa define uma despesa recorrente (aluguel, assinatura, salário)
// a partir da qual o agendador materializa despesas fixas datadas.
type ModeloDespesa struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Categoria      string          `gorm:"size:120;not null" json:"categoria"`
	Descricao      string          `gorm:"size:255" json:"descricao"`
	Fornecedor     string          `gorm:"size:120" json:"fornecedor"`
	Frequencia     string          `gorm:"size:20;not null;default:'Mensal'" json:"frequencia"`
	Metodo         string          `gorm:"size:30;not null;default:'Dinheiro'" json:"metodo"`
	Valor          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	DiaPagamento   *int            `json:"diaPagamento"`
	HoraPreferida  string          `gorm:"size:8" json:"horaPreferida"`
	LembrarMinutos int             `gorm:"not null;default:30" json:"lembrarMinutos"`
	AutoLembrete   bool            `gorm:"not null;default:true" json:"autoLembrete"`
	AutoInstanciar bool            `gorm:"not null;default:true" json:"autoInstanciar"`
	AutoMarcarPago bool            `gorm:"not null;default:false" json:"autoMarcarPago"`
	DataInicio     *time.Time      `gorm:"type:date" json:"dataInicio"`
	DataFim        *time.Time      `gorm:"type:date" json:"dataFim"`
	DataAncora     *time.Time      `gorm:"type:date" json:"dataAncora"`
	Ativo          bool            `gorm:"not null;default:true;index" json:"ativo"`
	UltimoUsoEm    *time.Time      `json:"ultimoUsoEm"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ModeloDespesa{})
}
