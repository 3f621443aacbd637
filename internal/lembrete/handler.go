// internal/lembrete/handler.go
package lembrete

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Repo é o que o handler precisa do repositório; facilita testar a guarda
// de exclusão sem banco.
type Repo interface {
	Criar(l *Lembrete) error
	BuscarPorID(id uint) (*Lembrete, error)
	ListarPorPeriodo(de, ate time.Time) ([]Lembrete, error)
	Atualizar(l *Lembrete) error
	DeletarPorID(id uint) error
	BuscarVinculo(lembreteID uint) (*Vinculo, error)
}

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// GET /lembretes?from=AAAA-MM-DD&to=AAAA-MM-DD
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "from e to são obrigatórios (AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	de, err1 := time.Parse("2006-01-02", from)
	ate, err2 := time.Parse("2006-01-02", to)
	if err1 != nil || err2 != nil {
		http.Error(w, "Data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}

	lembretes, err := h.Repo.ListarPorPeriodo(de, ate)
	if err != nil {
		http.Error(w, "Erro ao buscar lembretes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lembretes)
}

// POST /lembretes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var l Lembrete
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if l.Titulo == "" || l.Data.IsZero() {
		http.Error(w, "titulo e data são obrigatórios", http.StatusBadRequest)
		return
	}
	if l.Hora == "" {
		l.Hora = HoraPadrao
	}
	if l.Prioridade == "" {
		l.Prioridade = PrioridadeMedia
	}
	if l.LembrarMinutos == 0 {
		l.LembrarMinutos = LembrarMinutosPadrao
	}

	if err := h.Repo.Criar(&l); err != nil {
		http.Error(w, "Erro ao criar lembrete", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// PUT /lembretes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lembrete inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Lembrete não encontrado", http.StatusNotFound)
		return
	}

	var payload Lembrete
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	payload.ID = existente.ID
	payload.CreatedAt = existente.CreatedAt

	if err := h.Repo.Atualizar(&payload); err != nil {
		http.Error(w, "Erro ao atualizar lembrete", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// DELETE /lembretes/{id}
// Um lembrete ainda referenciado por um registro financeiro não pode ser
// excluído por aqui; a exclusão tem que partir do registro dono.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lembrete inválido", http.StatusBadRequest)
		return
	}

	vinculo, err := h.Repo.BuscarVinculo(uint(id))
	if err != nil {
		http.Error(w, "Erro ao verificar vínculos do lembrete", http.StatusInternalServerError)
		return
	}
	if vinculo != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": MensagemConflito(vinculo),
			"dominio": vinculo.Dominio,
			"donoId":  vinculo.DonoID,
		})
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Lembrete não encontrado", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
