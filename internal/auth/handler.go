package auth

import (
	"encoding/json"
	"net/http"

	"api/internal/usuario"
	"api/internal/utils"
)

type Handler struct {
	Usuarios *usuario.Repository
}

func NewHandler(repo *usuario.Repository) *Handler {
	return &Handler{Usuarios: repo}
}

type loginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	u, err := h.Usuarios.BuscarPorEmail(in.Email)
	if err != nil || !utils.VerificarSenha(u.SenhaHash, in.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GenerateAccessToken(u.ID, u.Admin)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"usuario": map[string]interface{}{
			"id":    u.ID,
			"nome":  u.Nome,
			"email": u.Email,
			"admin": u.Admin,
		},
	})
}
