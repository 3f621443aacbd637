// internal/orcamento/handler.go
package orcamento

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var mesValido = regexp.MustCompile(`^\d{4}-\d{2}$`)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /orcamentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	orcamentos, err := h.Repo.Listar()
	if err != nil {
		http.Error(w, "Erro ao buscar orçamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(orcamentos)
}

// POST /orcamentos  (upsert por mês)
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Mes   string          `json:"mes"`
		Valor decimal.Decimal `json:"valor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !mesValido.MatchString(in.Mes) {
		http.Error(w, "mes inválido (use AAAA-MM)", http.StatusBadRequest)
		return
	}

	o, err := h.Repo.Upsert(in.Mes, in.Valor)
	if err != nil {
		http.Error(w, "Erro ao salvar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(o)
}

// DELETE /orcamentos/{mes}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	mes := mux.Vars(r)["mes"]
	if !mesValido.MatchString(mes) {
		http.Error(w, "mes inválido (use AAAA-MM)", http.StatusBadRequest)
		return
	}

	if err := h.Repo.RemoverPorMes(mes); err != nil {
		http.Error(w, "Orçamento não encontrado", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /orcamentos/{mes}/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	mes := mux.Vars(r)["mes"]
	if !mesValido.MatchString(mes) {
		http.Error(w, "mes inválido (use AAAA-MM)", http.StatusBadRequest)
		return
	}

	resumo, err := h.Repo.ResumoMensal(mes)
	if err != nil {
		http.Error(w, "Erro ao calcular resumo mensal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}
