package honorario

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// POST /honorarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	h.salvar(w, r, "")
}

// PUT /honorarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	h.salvar(w, r, mux.Vars(r)["id"])
}

func (h *Handler) salvar(w http.ResponseWriter, r *http.Request, honorarioID string) {
	var form FormDataHonorario
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	report, err := h.Service.Salvar(&form, honorarioID)
	if err != nil {
		var ev *ErroValidacao
		status := http.StatusInternalServerError
		if errors.As(err, &ev) {
			status = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if report.Criado {
		w.WriteHeader(http.StatusCreated)
	}
	_ = json.NewEncoder(w).Encode(report)
}

// GET /honorarios/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	form := h.Service.Carregar(mux.Vars(r)["id"])
	if form == nil {
		http.Error(w, "Honorário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(form)
}

// GET /honorarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.Honorarios.ListarTodos(h.Service.DB)
	if err != nil {
		http.Error(w, "Erro ao listar honorários", http.StatusInternalServerError)
		return
	}

	hoje := time.Now()
	resumos := make([]ResumoHonorarioDTO, 0, len(list))
	for i := range list {
		hon := &list[i]
		parcelas, err := h.Service.Parcelas.ListarPorHonorario(hon.ID)
		if err != nil {
			parcelas = nil
		}
		quitadas := 0
		for j := range parcelas {
			if parcelas[j].Quitada() {
				quitadas++
			}
		}
		resumos = append(resumos, ResumoHonorarioDTO{
			ID:               hon.ID,
			NumeroProcesso:   hon.NumeroProcesso,
			Cliente:          h.nomeCliente(hon),
			ValorTotal:       hon.ValorTotal,
			FormaPagamento:   hon.FormaPagamento,
			Status:           hon.Status,
			StatusLabel:      FormatarStatus(hon, parcelas, hoje),
			ParcelasAtraso:   ContarParcelasAtraso(parcelas, hoje),
			TotalParcelas:    len(parcelas),
			ParcelasQuitadas: quitadas,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumos)
}

func (h *Handler) nomeCliente(hon *Honorario) string {
	c := h.Service.carregarCliente(hon)
	if c == nil {
		return ""
	}
	return c.Nome
}

// DELETE /honorarios/{id}
// Remove o cabeçalho e os registros dependentes (parcelas, divisões,
// histórico).
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s := h.Service

	if _, err := s.Honorarios.BuscarPorID(s.DB, id); err != nil {
		http.Error(w, "Honorário não encontrado", http.StatusNotFound)
		return
	}

	if err := s.Parcelas.DeletarPorHonorario(id); err != nil {
		http.Error(w, "Erro ao excluir parcelas", http.StatusInternalServerError)
		return
	}
	if err := s.Divisoes.DeletarPorHonorario(s.DB, id); err != nil {
		http.Error(w, "Erro ao excluir divisões", http.StatusInternalServerError)
		return
	}
	if err := s.Historicos.DeletarPorHonorario(s.DB, id); err != nil {
		http.Error(w, "Erro ao excluir histórico", http.StatusInternalServerError)
		return
	}
	if err := s.Honorarios.Deletar(s.DB, id); err != nil {
		http.Error(w, "Erro ao excluir honorário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
