package parcela

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AsielSouza/advsystem/internal/notificacao"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no PATCH /parcelas/{pid}/pagamento
type RegistrarPagamentoDTO struct {
	Valor         float64 `json:"valor"`
	DataPagamento string  `json:"dataPagamento"` // "2006-01-02"; vazio = hoje
}

// GET /honorarios/{id}/parcelas
func (h *Handler) ListarPorHonorario(w http.ResponseWriter, r *http.Request) {
	honorarioID := mux.Vars(r)["id"]

	parcelas, err := h.Repo.ListarPorHonorario(honorarioID)
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// PATCH /parcelas/{pid}/pagamento
// Acumula um pagamento na parcela. Não permite pagar uma parcela já quitada.
func (h *Handler) RegistrarPagamento(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	var in RegistrarPagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Valor <= 0 {
		http.Error(w, "O valor do pagamento deve ser maior que zero", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.BuscarPorID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}
	if atual.Status == StatusPaga {
		http.Error(w, "Não é permitido registrar pagamento em uma parcela já quitada", http.StatusBadRequest)
		return
	}

	data := time.Now()
	if in.DataPagamento != "" {
		d, err := time.Parse("2006-01-02", in.DataPagamento)
		if err != nil {
			http.Error(w, "Data de pagamento inválida", http.StatusBadRequest)
			return
		}
		data = d
	}

	p, err := h.Repo.RegistrarPagamento(uint(pid), in.Valor, data)
	if err != nil {
		http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}

	// Quitou o honorário inteiro? Avisa o financeiro.
	if p.Status == StatusPaga {
		todas, err := h.Repo.ListarPorHonorario(p.HonorarioID)
		if err == nil && todasPagas(todas) {
			go notificacao.EnviarWebhookHonorarioQuitado(p.HonorarioID, p.NumeroProcesso)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func todasPagas(parcelas []Parcela) bool {
	if len(parcelas) == 0 {
		return false
	}
	for i := range parcelas {
		if !parcelas[i].Quitada() {
			return false
		}
	}
	return true
}
