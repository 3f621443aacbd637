// internal/despesafixa/handler.go
package despesafixa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"api/internal/lembrete"
	"api/internal/logger"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Repo é o que o handler precisa do repositório de despesas; facilita testar
// sem banco.
type Repo interface {
	Criar(d *DespesaFixa) error
	BuscarPorID(id uint) (*DespesaFixa, error)
	Listar(f Filtros) ([]DespesaFixa, error)
	Atualizar(d *DespesaFixa) error
	DeletarPorID(id uint) error
}

// LembreteStore cobre as operações de lembrete usadas na sincronização e na
// limpeza melhor-esforço.
type LembreteStore interface {
	BuscarPorID(id uint) (*lembrete.Lembrete, error)
	Atualizar(l *lembrete.Lembrete) error
	DeletarPorID(id uint) error
}

type Handler struct {
	Repo      Repo
	Lembretes LembreteStore
}

func NewHandler(repo Repo, lembretes LembreteStore) *Handler {
	return &Handler{Repo: repo, Lembretes: lembretes}
}

// DTO usado no POST e no PUT de despesas fixas.
type DespesaDTO struct {
	Data       string          `json:"data"` // AAAA-MM-DD
	Hora       string          `json:"hora"`
	Categoria  string          `json:"categoria"`
	Descricao  string          `json:"descricao"`
	Fornecedor string          `json:"fornecedor"`
	Frequencia string          `json:"frequencia"`
	Metodo     string          `json:"metodo"`
	Valor      decimal.Decimal `json:"valor"`
	Estatus    string          `json:"estatus"`
}

// GET /despesas-fixas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var f Filtros
	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		de, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "from inválido (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
		f.De = &de
	}
	if v := q.Get("to"); v != "" {
		ate, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "to inválido (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
		f.Ate = &ate
	}
	f.Estatus = q.Get("estatus")
	f.Metodo = q.Get("metodo")

	despesas, err := h.Repo.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao buscar despesas fixas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(despesas)
}

// GET /despesas-fixas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}

	despesa, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(despesa)
}

// POST /despesas-fixas  (lançamento manual, sem modelo de origem)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Data == "" || in.Categoria == "" {
		http.Error(w, "Campos obrigatórios: data, categoria", http.StatusBadRequest)
		return
	}
	data, err := time.Parse("2006-01-02", in.Data)
	if err != nil {
		http.Error(w, "data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	if in.Estatus == "" {
		in.Estatus = EstatusPendente
	}
	if in.Frequencia == "" {
		in.Frequencia = "Mensal"
	}

	despesa := &DespesaFixa{
		Data:       data,
		Hora:       in.Hora,
		Categoria:  in.Categoria,
		Descricao:  in.Descricao,
		Fornecedor: in.Fornecedor,
		Frequencia: in.Frequencia,
		Metodo:     in.Metodo,
		Valor:      in.Valor,
		Estatus:    in.Estatus,
	}
	if err := h.Repo.Criar(despesa); err != nil {
		http.Error(w, "Erro ao criar despesa fixa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(despesa)
}

// PUT /despesas-fixas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}

	var in DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Data != "" {
		data, err := time.Parse("2006-01-02", in.Data)
		if err != nil {
			http.Error(w, "data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
		existente.Data = data
	}
	if in.Hora != "" {
		existente.Hora = in.Hora
	}
	if in.Categoria != "" {
		existente.Categoria = in.Categoria
	}
	if in.Descricao != "" {
		existente.Descricao = in.Descricao
	}
	if in.Fornecedor != "" {
		existente.Fornecedor = in.Fornecedor
	}
	if in.Frequencia != "" {
		existente.Frequencia = in.Frequencia
	}
	if in.Metodo != "" {
		existente.Metodo = in.Metodo
	}
	if !in.Valor.IsZero() {
		existente.Valor = in.Valor
	}
	if in.Estatus != "" {
		if in.Estatus != EstatusPendente && in.Estatus != EstatusPago {
			http.Error(w, "Status inválido. Use 'Pendente' ou 'Pago'.", http.StatusBadRequest)
			return
		}
		existente.Estatus = in.Estatus
	}

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar despesa fixa", http.StatusInternalServerError)
		return
	}

	h.sincronizarLembrete(existente)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /despesas-fixas/{id}
// Caminho sancionado para remover a despesa e o seu lembrete: a despesa é
// apagada primeiro e a limpeza do lembrete é melhor-esforço.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da despesa inválido", http.StatusBadRequest)
		return
	}

	despesa, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Despesa não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.DeletarPorID(despesa.ID); err != nil {
		http.Error(w, "Erro ao deletar despesa fixa", http.StatusInternalServerError)
		return
	}

	if despesa.LembreteID != nil {
		if err := h.Lembretes.DeletarPorID(*despesa.LembreteID); err != nil {
			logger.Log.Warnf("Não foi possível excluir o lembrete %d da despesa fixa %d: %v",
				*despesa.LembreteID, despesa.ID, err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// A sincronização do lembrete é consultiva: falhas são registradas e nunca
// derrubam a atualização da despesa.
func (h *Handler) sincronizarLembrete(d *DespesaFixa) {
	if d.LembreteID == nil {
		return
	}
	l, err := h.Lembretes.BuscarPorID(*d.LembreteID)
	if err != nil {
		logger.Log.Warnf("Lembrete %d da despesa fixa %d não pôde ser carregado: %v", *d.LembreteID, d.ID, err)
		return
	}
	l.Titulo = lembrete.TituloDespesa(d.Categoria)
	l.Descricao = lembrete.DescricaoDespesa(d.Fornecedor, d.Valor, d.Estatus)
	l.Data = d.Data
	if d.Hora != "" {
		l.Hora = d.Hora
	}
	if err := h.Lembretes.Atualizar(l); err != nil {
		logger.Log.Warnf("Lembrete %d da despesa fixa %d não pôde ser sincronizado: %v", *d.LembreteID, d.ID, err)
	}
}
