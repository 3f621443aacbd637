// internal/recebimento/repository.go
package recebimento

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de recebimentos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Filtros de listagem; campos vazios não filtram.
type Filtros struct {
	De      *time.Time
	Ate     *time.Time
	Metodo  string
	Estatus string
	Origem  string
}

// Criar persiste um novo recebimento.
func (r *Repository) Criar(rec *Recebimento) error {
	return r.DB.Create(rec).Error
}

// BuscarPorID busca um único recebimento pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Recebimento, error) {
	var rec Recebimento
	if err := r.DB.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Listar devolve os recebimentos aplicando os filtros informados.
func (r *Repository) Listar(f Filtros) ([]Recebimento, error) {
	var recebimentos []Recebimento
	q := r.DB.Order("data DESC, id DESC")
	if f.De != nil {
		q = q.Where("data >= ?", f.De.Format("2006-01-02"))
	}
	if f.Ate != nil {
		q = q.Where("data <= ?", f.Ate.Format("2006-01-02"))
	}
	if f.Metodo != "" {
		q = q.Where("metodo = ?", f.Metodo)
	}
	if f.Estatus != "" {
		q = q.Where("estatus = ?", f.Estatus)
	}
	if f.Origem != "" {
		q = q.Where("origem = ?", f.Origem)
	}
	err := q.Find(&recebimentos).Error
	return recebimentos, err
}

// Atualizar atualiza todos os campos de um recebimento existente (Save exige PK).
func (r *Repository) Atualizar(rec *Recebimento) error {
	return r.DB.Save(rec).Error
}

// AtualizarLembrete grava (ou limpa) a referência ao lembrete do recebimento.
func (r *Repository) AtualizarLembrete(id uint, lembreteID *uint) error {
	return r.DB.Model(&Recebimento{}).
		Where("id = ?", id).
		Update("lembrete_id", lembreteID).Error
}

// DeletarPorID apaga o recebimento; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Recebimento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
