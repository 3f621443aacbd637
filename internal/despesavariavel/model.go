// internal/despesavariavel/model.go
package despesavariavel

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DespesaVariavel é um gasto avulso (compra de material, manutenção etc.).
type DespesaVariavel struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Unidades      int             `gorm:"not null;default:1" json:"unidades"`
	Produto       string          `gorm:"size:120;not null" json:"produto"`
	Descricao     string          `gorm:"size:255" json:"descricao"`
	Entidade      string          `gorm:"size:120" json:"entidade"`
	ValorUnitario decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorUnitario"`
	Metodo        string          `gorm:"size:30;not null;default:'Dinheiro'" json:"metodo"`
	Valor         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	Estatus       string          `gorm:"size:50;not null;default:'Pendente';index" json:"estatus"`
	LembreteID    *uint           `gorm:"index" json:"lembreteId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DespesaVariavel{})
}
