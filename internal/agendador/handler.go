// internal/agendador/handler.go
package agendador

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"api/internal/despesafixa"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Agendador é o que o handler precisa do serviço; facilita testes HTTP.
type Agendador interface {
	ExecutarParaData(data time.Time) (Resultado, error)
	InstanciarModelo(id uint, data time.Time, estatus string) (*despesafixa.DespesaFixa, bool, error)
}

type Handler struct {
	Service Agendador
}

func NewHandler(service Agendador) *Handler {
	return &Handler{Service: service}
}

// POST /agendador/executar
// Corpo opcional: {"data": "AAAA-MM-DD"}. Sem corpo, executa para hoje.
func (h *Handler) Executar(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Data string `json:"data"`
	}
	if r.Body != nil {
		// Corpo vazio é aceito; só JSON inválido rejeita.
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "JSON mal formado", http.StatusBadRequest)
			return
		}
	}

	data := time.Now()
	if in.Data != "" {
		parsed, err := time.Parse("2006-01-02", in.Data)
		if err != nil {
			http.Error(w, "data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
		data = parsed
	}

	res, err := h.Service.ExecutarParaData(data)
	if err != nil {
		http.Error(w, "Erro ao executar o agendador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

// POST /modelos-despesa/{id}/instanciar
// Corpo opcional: {"data": "AAAA-MM-DD", "estatus": "Pendente"|"Pago"}.
// 201 quando a despesa foi criada, 200 quando o período já existia.
func (h *Handler) Instanciar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do modelo inválido", http.StatusBadRequest)
		return
	}

	var in struct {
		Data    string `json:"data"`
		Estatus string `json:"estatus"`
	}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "JSON mal formado", http.StatusBadRequest)
			return
		}
	}

	data := time.Now()
	if in.Data != "" {
		parsed, err := time.Parse("2006-01-02", in.Data)
		if err != nil {
			http.Error(w, "data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
		data = parsed
	}
	if in.Estatus != "" && in.Estatus != despesafixa.EstatusPendente && in.Estatus != despesafixa.EstatusPago {
		http.Error(w, "estatus inválido (use Pendente ou Pago)", http.StatusBadRequest)
		return
	}

	despesa, criada, err := h.Service.InstanciarModelo(uint(id), data, in.Estatus)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Modelo de despesa não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao instanciar o modelo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if criada {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(despesa)
}
