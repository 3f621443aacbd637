// internal/lembrete/repository.go
package lembrete

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de lembretes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar persiste um novo lembrete.
func (r *Repository) Criar(l *Lembrete) error {
	return r.DB.Create(l).Error
}

// BuscarPorID busca um único lembrete pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Lembrete, error) {
	var l Lembrete
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListarPorPeriodo devolve os lembretes com data dentro do intervalo.
func (r *Repository) ListarPorPeriodo(de, ate time.Time) ([]Lembrete, error) {
	var lembretes []Lembrete
	err := r.DB.
		Where("data >= ? AND data <= ?", de, ate).
		Order("data ASC, hora ASC").
		Find(&lembretes).Error
	return lembretes, err
}

// Atualizar atualiza todos os campos de um lembrete existente (Save exige PK).
func (r *Repository) Atualizar(l *Lembrete) error {
	return r.DB.Save(l).Error
}

// DeletarPorID apaga o lembrete; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Lembrete{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BuscarVinculo percorre as tabelas donas em ordem e devolve o primeiro
// registro que referencia o lembrete, ou nil se ele não pertence a ninguém.
// As tabelas são consultadas pelo nome para não criar dependência cíclica
// entre os pacotes de domínio.
func (r *Repository) BuscarVinculo(lembreteID uint) (*Vinculo, error) {
	for _, s := range sondas {
		var ids []uint
		err := r.DB.Table(s.tabela).
			Where("lembrete_id = ?", lembreteID).
			Limit(1).
			Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			return &Vinculo{Dominio: s.dominio, DonoID: ids[0]}, nil
		}
	}
	return nil, nil
}
