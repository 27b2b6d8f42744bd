package advogado

import (
	"encoding/json"
	"net/http"

	"github.com/AsielSouza/advsystem/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type criarAdvogadoRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	OAB       string `json:"oab"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Parceiro  bool   `json:"parceiro"`
	Senha     string `json:"senha"`
	IsAdmin   bool   `json:"isAdmin"`
}

// POST /advogados
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarAdvogadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	senha := req.Senha
	precisaRedefinir := false
	if senha == "" {
		tmp, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		senha = tmp
		precisaRedefinir = true
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	a := Advogado{
		Nome:                  req.Nome,
		Sobrenome:             req.Sobrenome,
		OAB:                   req.OAB,
		Email:                 req.Email,
		Telefone:              req.Telefone,
		Parceiro:              req.Parceiro,
		Senha:                 hash,
		PrecisaRedefinirSenha: precisaRedefinir,
		IsAdmin:               req.IsAdmin,
	}

	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar advogado", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /advogados
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar advogados", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /advogados/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	a, err := h.Repository.BuscarPorID(h.DB, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Advogado não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(a)
}

// PUT /advogados/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	existente, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Advogado não encontrado", http.StatusNotFound)
		return
	}

	var req criarAdvogadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	existente.Nome = req.Nome
	existente.Sobrenome = req.Sobrenome
	existente.OAB = req.OAB
	existente.Email = req.Email
	existente.Telefone = req.Telefone
	existente.Parceiro = req.Parceiro
	if req.Senha != "" {
		hash, err := utils.HashSenha(req.Senha)
		if err != nil {
			http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
			return
		}
		existente.Senha = hash
		existente.PrecisaRedefinirSenha = false
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "erro ao atualizar advogado", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// DELETE /advogados/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	if err := h.Repository.Deletar(h.DB, mux.Vars(r)["id"]); err != nil {
		http.Error(w, "erro ao remover advogado", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
