// internal/modelodespesa/repository.go
package modelodespesa

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de modelos de despesa.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar persiste um novo modelo.
func (r *Repository) Criar(m *ModeloDespesa) error {
	return r.DB.Create(m).Error
}

// BuscarPorID busca um único modelo pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*ModeloDespesa, error) {
	var m ModeloDespesa
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Listar devolve os modelos, com filtro opcional por ativo.
func (r *Repository) Listar(ativo *bool) ([]ModeloDespesa, error) {
	var modelos []ModeloDespesa
	q := r.DB.Order("categoria ASC, id DESC")
	if ativo != nil {
		q = q.Where("ativo = ?", *ativo)
	}
	err := q.Find(&modelos).Error
	return modelos, err
}

// ListarAtivasAuto devolve os modelos elegíveis para o agendador
// (ativos e com auto-instanciação ligada).
func (r *Repository) ListarAtivasAuto() ([]ModeloDespesa, error) {
	var modelos []ModeloDespesa
	err := r.DB.
		Where("ativo = ? AND auto_instanciar = ?", true, true).
		Order("id ASC").
		Find(&modelos).Error
	return modelos, err
}

// Atualizar atualiza todos os campos de um modelo existente (Save exige PK).
func (r *Repository) Atualizar(m *ModeloDespesa) error {
	return r.DB.Save(m).Error
}

// DeletarPorID apaga o modelo; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&ModeloDespesa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarcarUso registra quando o modelo foi instanciado pela última vez
// (auditoria; não participa da cadência).
func (r *Repository) MarcarUso(id uint) error {
	return r.DB.Model(&ModeloDespesa{}).
		Where("id = ?", id).
		Update("ultimo_uso_em", time.Now()).Error
}
