package usuario

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	Nome      string `gorm:"size:120" json:"nome"`
	Email     string `gorm:"size:160;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`
	Admin     bool   `gorm:"not null;default:false" json:"admin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
