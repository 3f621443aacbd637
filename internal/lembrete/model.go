// internal/lembrete/model.go
package lembrete

import (
	"time"

	"gorm.io/gorm"
)

// Lembrete é uma entrada de calendário. Pode pertencer a no máximo um
// registro financeiro (recebimento, despesa fixa ou despesa variável); a
// posse não é gravada aqui, é derivada consultando as tabelas donas.
type Lembrete struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Titulo         string    `gorm:"size:160;not null" json:"titulo"`
	Descricao      string    `gorm:"size:255" json:"descricao"`
	Data           time.Time `gorm:"type:date;not null;index" json:"data"`
	Hora           string    `gorm:"size:8" json:"hora"`
	Tipo           string    `gorm:"size:30;not null;default:'pessoal'" json:"tipo"`
	Prioridade     string    `gorm:"size:20;not null;default:'media'" json:"prioridade"`
	LembrarMinutos int       `gorm:"not null;default:30" json:"lembrarMinutos"`
	Completado     bool      `gorm:"not null;default:false" json:"completado"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lembrete{})
}
