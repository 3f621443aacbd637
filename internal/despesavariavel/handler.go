// internal/despesavariavel/handler.go
package despesavariavel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"api/internal/lembrete"
	"api/internal/logger"

	"github.com/gorilla/mux"
)

// Repo é o que o handler precisa do repositório de despesas; facilita testar
// sem banco.
type Repo interface {
	Criar(d *DespesaVariavel) error
	BuscarPorID(id uint) (*DespesaVariavel, error)
	Listar(metodo, estatus string) ([]DespesaVariavel, error)
	Atualizar(d *DespesaVariavel) error
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

// GET /despesas-variaveis
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	despesas, err := h.Repo.Listar(r.URL.Query().Get("metodo"), r.URL.Query().Get("estatus"))
	if err != nil {
		http.Error(w, "Erro ao buscar despesas variáveis", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(despesas)
}

// GET /despesas-variaveis/{id}
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

// POST /despesas-variaveis
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var d DespesaVariavel
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if d.Produto == "" {
		http.Error(w, "Campos obrigatórios: produto, valor", http.StatusBadRequest)
		return
	}
	if d.Unidades == 0 {
		d.Unidades = 1
	}
	if d.Estatus == "" {
		d.Estatus = "Pendente"
	}
	d.ID = 0
	d.LembreteID = nil

	if err := h.Repo.Criar(&d); err != nil {
		http.Error(w, "Erro ao criar despesa variável", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// PUT /despesas-variaveis/{id}
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

	var payload DespesaVariavel
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	payload.ID = existente.ID
	payload.LembreteID = existente.LembreteID
	payload.CreatedAt = existente.CreatedAt

	if err := h.Repo.Atualizar(&payload); err != nil {
		http.Error(w, "Erro ao atualizar despesa variável", http.StatusInternalServerError)
		return
	}

	h.sincronizarLembrete(&payload)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// DELETE /despesas-variaveis/{id}
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
		http.Error(w, "Erro ao deletar despesa variável", http.StatusInternalServerError)
		return
	}

	if despesa.LembreteID != nil {
		if err := h.Lembretes.DeletarPorID(*despesa.LembreteID); err != nil {
			logger.Log.Warnf("Não foi possível excluir o lembrete %d da despesa variável %d: %v",
				*despesa.LembreteID, despesa.ID, err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// Despesas variáveis não têm data própria; só título e descrição do lembrete
// acompanham o registro. Falhas não derrubam a atualização.
func (h *Handler) sincronizarLembrete(d *DespesaVariavel) {
	if d.LembreteID == nil {
		return
	}
	l, err := h.Lembretes.BuscarPorID(*d.LembreteID)
	if err != nil {
		logger.Log.Warnf("Lembrete %d da despesa variável %d não pôde ser carregado: %v", *d.LembreteID, d.ID, err)
		return
	}
	l.Titulo = lembrete.TituloDespesa(d.Produto)
	l.Descricao = lembrete.DescricaoDespesa(d.Entidade, d.Valor, d.Estatus)
	if err := h.Lembretes.Atualizar(l); err != nil {
		logger.Log.Warnf("Lembrete %d da despesa variável %d não pôde ser sincronizado: %v", *d.LembreteID, d.ID, err)
	}
}
