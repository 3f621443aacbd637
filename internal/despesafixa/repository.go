// internal/despesafixa/repository.go
package despesafixa

import (
	"errors"
	"time"

	"api/internal/modelodespesa"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de despesas fixas.
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
	Estatus string
	Metodo  string
}

// Criar persiste uma nova despesa.
func (r *Repository) Criar(d *DespesaFixa) error {
	return r.DB.Create(d).Error
}

// BuscarPorID busca uma única despesa pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*DespesaFixa, error) {
	var d DespesaFixa
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// BuscarPorModeloEData busca a despesa gerada de um modelo para uma data.
// É a consulta de idempotência do agendador.
func (r *Repository) BuscarPorModeloEData(modeloID uint, data time.Time) (*DespesaFixa, error) {
	var d DespesaFixa
	err := r.DB.
		Where("modelo_despesa_id = ? AND data = ?", modeloID, data.Format("2006-01-02")).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ObterOuCriarDoModelo devolve a despesa do par (modelo, data), criando-a a
// partir dos campos do modelo quando ainda não existe. O segundo retorno
// indica se a despesa foi criada agora; reexecuções para a mesma data
// encontram a linha existente e não duplicam o período.
func (r *Repository) ObterOuCriarDoModelo(m *modelodespesa.ModeloDespesa, data time.Time, estatus string) (*DespesaFixa, bool, error) {
	existente, err := r.BuscarPorModeloEData(m.ID, data)
	if err == nil {
		return existente, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if estatus == "" {
		estatus = EstatusPendente
		if m.AutoMarcarPago {
			estatus = EstatusPago
		}
	}

	modeloID := m.ID
	nova := &DespesaFixa{
		ModeloDespesaID: &modeloID,
		Data:            time.Date(data.Year(), data.Month(), data.Day(), 0, 0, 0, 0, time.UTC),
		Hora:            m.HoraPreferida,
		Categoria:       m.Categoria,
		Descricao:       m.Descricao,
		Fornecedor:      m.Fornecedor,
		Frequencia:      m.Frequencia,
		Metodo:          m.Metodo,
		Valor:           m.Valor,
		Estatus:         estatus,
	}
	if err := r.DB.Create(nova).Error; err != nil {
		return nil, false, err
	}
	return nova, true, nil
}

// Listar devolve as despesas aplicando os filtros informados.
func (r *Repository) Listar(f Filtros) ([]DespesaFixa, error) {
	var despesas []DespesaFixa
	q := r.DB.Order("data DESC, id DESC")
	if f.De != nil {
		q = q.Where("data >= ?", f.De.Format("2006-01-02"))
	}
	if f.Ate != nil {
		q = q.Where("data <= ?", f.Ate.Format("2006-01-02"))
	}
	if f.Estatus != "" {
		q = q.Where("estatus = ?", f.Estatus)
	}
	if f.Metodo != "" {
		q = q.Where("metodo = ?", f.Metodo)
	}
	err := q.Find(&despesas).Error
	return despesas, err
}

// Atualizar atualiza todos os campos de uma despesa existente (Save exige PK).
func (r *Repository) Atualizar(d *DespesaFixa) error {
	return r.DB.Save(d).Error
}

// AtualizarLembrete grava (ou limpa) a referência ao lembrete da despesa.
func (r *Repository) AtualizarLembrete(id uint, lembreteID *uint) error {
	return r.DB.Model(&DespesaFixa{}).
		Where("id = ?", id).
		Update("lembrete_id", lembreteID).Error
}

// DeletarPorID apaga a despesa; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&DespesaFixa{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
