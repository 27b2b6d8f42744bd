package auth

import (
	"encoding/json"
	"net/http"

	"github.com/AsielSouza/advsystem/internal/advogado"
	"github.com/AsielSouza/advsystem/internal/utils"
	"gorm.io/gorm"
)

type loginRequest struct {
	Login string `json:"login"` // email ou OAB
	Senha string `json:"senha"`
}

// LoginHandler autentica um advogado e emite access + refresh token.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := advogado.NewRepository()
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}

		user, err := repo.BuscarPorEmailOuOAB(db, req.Login)
		if err != nil {
			http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
			return
		}

		if !utils.CheckSenha(user.Senha, req.Senha) {
			http.Error(w, "senha incorreta", http.StatusUnauthorized)
			return
		}

		access, err := IssueTokensOnLogin(db, w, user.ID, user.IsAdmin)
		if err != nil {
			http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token":            access,
			"precisaRedefinir": user.PrecisaRedefinirSenha,
			"advogadoId":       user.ID,
			"isAdmin":          user.IsAdmin,
		})
	}
}
