// internal/recebimento/model.go
package recebimento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recebimento é uma entrada financeira (mensalidade, matrícula) vinculada a
// um curso e a um aluno.
type Recebimento struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Curso      string          `gorm:"size:120;not null" json:"curso"`
	Aluno      string          `gorm:"size:160" json:"aluno"`
	Data       time.Time       `gorm:"type:date;not null;index" json:"data"`
	Hora       string          `gorm:"size:8" json:"hora"`
	Metodo     string          `gorm:"size:30;not null;default:'Dinheiro'" json:"metodo"`
	Valor      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor"`
	Estatus    string          `gorm:"size:50;not null;default:'Pendente';index" json:"estatus"`
	Origem     string          `gorm:"size:30;not null;default:'manual'" json:"origem"`
	LembreteID *uint           `gorm:"index" json:"lembreteId"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Recebimento{})
}
