// internal/orcamento/repository.go
package orcamento

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de orçamentos mensais.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Listar devolve todos os orçamentos, mais recentes primeiro.
func (r *Repository) Listar() ([]Orcamento, error) {
	var orcamentos []Orcamento
	err := r.DB.Order("mes DESC").Find(&orcamentos).Error
	return orcamentos, err
}

// Upsert cria ou substitui o orçamento do mês.
func (r *Repository) Upsert(mes string, valor decimal.Decimal) (*Orcamento, error) {
	var o Orcamento
	err := r.DB.Where("mes = ?", mes).First(&o).Error
	switch {
	case err == nil:
		o.Valor = valor
		if err := r.DB.Save(&o).Error; err != nil {
			return nil, err
		}
		return &o, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		o = Orcamento{Mes: mes, Valor: valor}
		if err := r.DB.Create(&o).Error; err != nil {
			return nil, err
		}
		return &o, nil
	default:
		return nil, err
	}
}

// RemoverPorMes apaga o orçamento do mês; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) RemoverPorMes(mes string) error {
	res := r.DB.Where("mes = ?", mes).Delete(&Orcamento{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ResumoMensal soma as despesas do mês contra o orçamento. Despesas fixas
// entram pela data de vencimento; variáveis, pela data de lançamento.
func (r *Repository) ResumoMensal(mes string) (*ResumoMensal, error) {
	resumo := &ResumoMensal{Mes: mes}

	var o Orcamento
	if err := r.DB.Where("mes = ?", mes).First(&o).Error; err == nil {
		resumo.Orcamento = o.Valor
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var fixas decimal.Decimal
	err := r.DB.Table("despesa_fixas").
		Where("to_char(data, 'YYYY-MM') = ?", mes).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&fixas).Error
	if err != nil {
		return nil, err
	}

	var variaveis decimal.Decimal
	err = r.DB.Table("despesa_variavels").
		Where("to_char(created_at, 'YYYY-MM') = ?", mes).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&variaveis).Error
	if err != nil {
		return nil, err
	}

	resumo.DespesasFixas = fixas
	resumo.DespesasVariaveis = variaveis
	resumo.Total = fixas.Add(variaveis)
	resumo.Saldo = resumo.Orcamento.Sub(resumo.Total)
	return resumo, nil
}
