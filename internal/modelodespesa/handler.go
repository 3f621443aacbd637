// internal/modelodespesa/handler.go
package modelodespesa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func validar(m *ModeloDespesa) string {
	if m.Categoria == "" {
		return "categoria é obrigatória"
	}
	if m.Frequencia != "" && !FrequenciaValida(m.Frequencia) {
		return "Frequência inválida. Use 'Mensal', 'Bimestral', 'Semestral' ou 'Anual'."
	}
	if m.DiaPagamento != nil && (*m.DiaPagamento < 1 || *m.DiaPagamento > 31) {
		return "diaPagamento deve estar entre 1 e 31"
	}
	return ""
}

// GET /modelos-despesa
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var ativo *bool
	if v := r.URL.Query().Get("ativo"); v != "" {
		b := v == "true" || v == "1"
		ativo = &b
	}

	modelos, err := h.Repo.Listar(ativo)
	if err != nil {
		http.Error(w, "Erro ao buscar modelos de despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelos)
}

// GET /modelos-despesa/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do modelo inválido", http.StatusBadRequest)
		return
	}

	modelo, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Modelo não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelo)
}

// POST /modelos-despesa
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var m ModeloDespesa
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if m.Frequencia == "" {
		m.Frequencia = FrequenciaMensal
	}
	if m.LembrarMinutos == 0 {
		m.LembrarMinutos = 30
	}
	if msg := validar(&m); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "Erro ao criar modelo de despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// AtualizacaoDTO carrega os campos do PUT. Campos ausentes preservam o valor
// atual do modelo; diaPagamento 0 e datas "" limpam o campo.
type AtualizacaoDTO struct {
	Categoria      *string          `json:"categoria"`
	Descricao      *string          `json:"descricao"`
	Fornecedor     *string          `json:"fornecedor"`
	Frequencia     *string          `json:"frequencia"`
	Metodo         *string          `json:"metodo"`
	Valor          *decimal.Decimal `json:"valor"`
	DiaPagamento   *int             `json:"diaPagamento"`
	HoraPreferida  *string          `json:"horaPreferida"`
	LembrarMinutos *int             `json:"lembrarMinutos"`
	AutoLembrete   *bool            `json:"autoLembrete"`
	AutoInstanciar *bool            `json:"autoInstanciar"`
	AutoMarcarPago *bool            `json:"autoMarcarPago"`
	DataInicio     *string          `json:"dataInicio"` // AAAA-MM-DD
	DataFim        *string          `json:"dataFim"`
	DataAncora     *string          `json:"dataAncora"`
	Ativo          *bool            `json:"ativo"`
}

// aplicar mescla os campos presentes sobre o modelo e valida o resultado.
// Devolve a mensagem de erro de validação ou "".
func (in *AtualizacaoDTO) aplicar(m *ModeloDespesa) string {
	if in.Categoria != nil {
		m.Categoria = *in.Categoria
	}
	if in.Descricao != nil {
		m.Descricao = *in.Descricao
	}
	if in.Fornecedor != nil {
		m.Fornecedor = *in.Fornecedor
	}
	if in.Frequencia != nil && *in.Frequencia != "" {
		m.Frequencia = *in.Frequencia
	}
	if in.Metodo != nil {
		m.Metodo = *in.Metodo
	}
	if in.Valor != nil {
		m.Valor = *in.Valor
	}
	if in.DiaPagamento != nil {
		if *in.DiaPagamento == 0 {
			m.DiaPagamento = nil
		} else {
			m.DiaPagamento = in.DiaPagamento
		}
	}
	if in.HoraPreferida != nil {
		m.HoraPreferida = *in.HoraPreferida
	}
	if in.LembrarMinutos != nil {
		m.LembrarMinutos = *in.LembrarMinutos
	}
	if in.AutoLembrete != nil {
		m.AutoLembrete = *in.AutoLembrete
	}
	if in.AutoInstanciar != nil {
		m.AutoInstanciar = *in.AutoInstanciar
	}
	if in.AutoMarcarPago != nil {
		m.AutoMarcarPago = *in.AutoMarcarPago
	}
	if msg := aplicarData(in.DataInicio, &m.DataInicio, "dataInicio"); msg != "" {
		return msg
	}
	if msg := aplicarData(in.DataFim, &m.DataFim, "dataFim"); msg != "" {
		return msg
	}
	if msg := aplicarData(in.DataAncora, &m.DataAncora, "dataAncora"); msg != "" {
		return msg
	}
	if in.Ativo != nil {
		m.Ativo = *in.Ativo
	}
	return validar(m)
}

func aplicarData(in *string, destino **time.Time, campo string) string {
	if in == nil {
		return ""
	}
	if *in == "" {
		*destino = nil
		return ""
	}
	data, err := time.Parse("2006-01-02", *in)
	if err != nil {
		return campo + " inválida (use AAAA-MM-DD)"
	}
	*destino = &data
	return ""
}

// PUT /modelos-despesa/{id}
// Atualização parcial: só os campos presentes no corpo são alterados.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do modelo inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Modelo não encontrado", http.StatusNotFound)
		return
	}

	var in AtualizacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := in.aplicar(existente); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// Editar DataAncora não reconcilia instâncias já criadas: as chaves de
	// período antigas permanecem válidas e apenas os próximos disparos mudam.
	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar modelo de despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /modelos-despesa/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do modelo inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Modelo não encontrado", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
