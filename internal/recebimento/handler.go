// internal/recebimento/handler.go
package recebimento

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

// Repo é o que o handler precisa do repositório de recebimentos; facilita
// testar sem banco.
type Repo interface {
	Criar(rec *Recebimento) error
	BuscarPorID(id uint) (*Recebimento, error)
	Listar(f Filtros) ([]Recebimento, error)
	Atualizar(rec *Recebimento) error
	AtualizarLembrete(id uint, lembreteID *uint) error
	DeletarPorID(id uint) error
}

// LembreteStore cobre as operações de lembrete usadas na sincronização e na
// limpeza melhor-esforço.
type LembreteStore interface {
	Criar(l *lembrete.Lembrete) error
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

// DTO usado no POST e no PUT de recebimentos.
type RecebimentoDTO struct {
	Curso   string          `json:"curso"`
	Aluno   string          `json:"aluno"`
	Data    string          `json:"data"` // AAAA-MM-DD
	Hora    string          `json:"hora"`
	Metodo  string          `json:"metodo"`
	Valor   decimal.Decimal `json:"valor"`
	Estatus string          `json:"estatus"`
	Origem  string          `json:"origem"`
}

// GET /recebimentos
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
	f.Metodo = q.Get("metodo")
	f.Estatus = q.Get("estatus")
	f.Origem = q.Get("origem")

	recebimentos, err := h.Repo.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao buscar recebimentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(recebimentos)
}

// GET /recebimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	rec, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Recebimento não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// POST /recebimentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in RecebimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Curso == "" || in.Data == "" || in.Metodo == "" {
		http.Error(w, "Campos obrigatórios: curso, data, metodo, valor", http.StatusBadRequest)
		return
	}
	data, err := time.Parse("2006-01-02", in.Data)
	if err != nil {
		http.Error(w, "data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	if in.Estatus == "" {
		in.Estatus = "Pendente"
	}
	if in.Origem == "" {
		in.Origem = "manual"
	}

	rec := &Recebimento{
		Curso:   in.Curso,
		Aluno:   in.Aluno,
		Data:    data,
		Hora:    in.Hora,
		Metodo:  in.Metodo,
		Valor:   in.Valor,
		Estatus: in.Estatus,
		Origem:  in.Origem,
	}
	if err := h.Repo.Criar(rec); err != nil {
		http.Error(w, "Erro ao criar recebimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// PUT /recebimentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Recebimento não encontrado", http.StatusNotFound)
		return
	}

	var in RecebimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Curso != "" {
		existente.Curso = in.Curso
	}
	if in.Aluno != "" {
		existente.Aluno = in.Aluno
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
	if in.Metodo != "" {
		existente.Metodo = in.Metodo
	}
	if !in.Valor.IsZero() {
		existente.Valor = in.Valor
	}
	if in.Estatus != "" {
		existente.Estatus = in.Estatus
	}

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar recebimento", http.StatusInternalServerError)
		return
	}

	h.sincronizarLembrete(existente)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /recebimentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	rec, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Recebimento não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.DeletarPorID(rec.ID); err != nil {
		http.Error(w, "Erro ao deletar recebimento", http.StatusInternalServerError)
		return
	}

	if rec.LembreteID != nil {
		if err := h.Lembretes.DeletarPorID(*rec.LembreteID); err != nil {
			logger.Log.Warnf("Não foi possível excluir o lembrete %d do recebimento %d: %v",
				*rec.LembreteID, rec.ID, err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// Atualiza o lembrete vinculado; cria um quando o recebimento ainda não tem.
// Em ambos os casos falhas são só registradas: o lembrete é consultivo.
func (h *Handler) sincronizarLembrete(rec *Recebimento) {
	if rec.LembreteID != nil {
		l, err := h.Lembretes.BuscarPorID(*rec.LembreteID)
		if err != nil {
			logger.Log.Warnf("Lembrete %d do recebimento %d não pôde ser carregado: %v", *rec.LembreteID, rec.ID, err)
			return
		}
		l.Titulo = lembrete.TituloRecebimento(rec.Curso, rec.Aluno)
		l.Descricao = lembrete.DescricaoRecebimento(rec.Valor, rec.Estatus)
		l.Data = rec.Data
		if rec.Hora != "" {
			l.Hora = rec.Hora
		}
		if err := h.Lembretes.Atualizar(l); err != nil {
			logger.Log.Warnf("Lembrete %d do recebimento %d não pôde ser sincronizado: %v", *rec.LembreteID, rec.ID, err)
		}
		return
	}

	hora := rec.Hora
	if hora == "" {
		hora = lembrete.HoraPadrao
	}
	l := &lembrete.Lembrete{
		Titulo:         lembrete.TituloRecebimento(rec.Curso, rec.Aluno),
		Descricao:      lembrete.DescricaoRecebimento(rec.Valor, rec.Estatus),
		Data:           rec.Data,
		Hora:           hora,
		Tipo:           lembrete.TipoTrabalho,
		Prioridade:     lembrete.PrioridadeMedia,
		LembrarMinutos: lembrete.LembrarMinutosPadrao,
	}
	if err := h.Lembretes.Criar(l); err != nil {
		logger.Log.Warnf("Não foi possível criar o lembrete do recebimento %d: %v", rec.ID, err)
		return
	}
	if err := h.Repo.AtualizarLembrete(rec.ID, &l.ID); err != nil {
		logger.Log.Warnf("Não foi possível vincular o lembrete %d ao recebimento %d: %v", l.ID, rec.ID, err)
		return
	}
	rec.LembreteID = &l.ID
}
