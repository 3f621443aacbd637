// internal/despesavariavel/repository.go
package despesavariavel

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de despesas variáveis.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar persiste uma nova despesa variável.
func (r *Repository) Criar(d *DespesaVariavel) error {
	return r.DB.Create(d).Error
}

// BuscarPorID busca uma única despesa variável pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*DespesaVariavel, error) {
	var d DespesaVariavel
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// Listar devolve as despesas variáveis, com filtros opcionais.
func (r *Repository) Listar(metodo, estatus string) ([]DespesaVariavel, error) {
	var despesas []DespesaVariavel
	q := r.DB.Order("id DESC")
	if metodo != "" {
		q = q.Where("metodo = ?", metodo)
	}
	if estatus != "" {
		q = q.Where("estatus = ?", estatus)
	}
	err := q.Find(&despesas).Error
	return despesas, err
}

// Atualizar atualiza todos os campos de uma despesa existente (Save exige PK).
func (r *Repository) Atualizar(d *DespesaVariavel) error {
	return r.DB.Save(d).Error
}

// AtualizarLembrete grava (ou limpa) a referência ao lembrete da despesa.
func (r *Repository) AtualizarLembrete(id uint, lembreteID *uint) error {
	return r.DB.Model(&DespesaVariavel{}).
		Where("id = ?", id).
		Update("lembrete_id", lembreteID).Error
}

// DeletarPorID apaga a despesa; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&DespesaVariavel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
