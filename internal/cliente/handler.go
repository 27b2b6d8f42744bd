package cliente

import (
	"encoding/json"
	"net/http"

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

// POST /clientes/fisicas
func (h *Handler) CriarPF(w http.ResponseWriter, r *http.Request) {
	var c PessoaFisica
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.CriarPF(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// POST /clientes/juridicas
func (h *Handler) CriarPJ(w http.ResponseWriter, r *http.Request) {
	var c PessoaJuridica
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.CriarPJ(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /clientes/fisicas
func (h *Handler) ListarPF(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPF(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /clientes/juridicas
func (h *Handler) ListarPJ(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPJ(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /clientes/fisicas/{id}
func (h *Handler) BuscarPF(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repository.BuscarPFPorID(h.DB, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// GET /clientes/juridicas/{id}
func (h *Handler) BuscarPJ(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repository.BuscarPJPorID(h.DB, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}
