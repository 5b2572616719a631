package boleto

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardoas/boleteiro/internal/boleto"
)

type Handler struct {
	svc *boleto.Service
}

func NewHandler(svc *boleto.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listByCPF)
}

func (h *Handler) listByCPF(w http.ResponseWriter, r *http.Request) {
	cpf := r.URL.Query().Get("cpf")
	if !validCPF(cpf) {
		http.Error(w, "CPF inválido. Deve ser um número de 11 dígitos.", http.StatusBadRequest)
		return
	}

	bs, err := h.svc.ListByTaxID(r.Context(), cpf)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := listResponse{
		CPF:     cpf,
		Boletos: toResponseList(bs),
	}
	if len(bs) == 0 {
		resp.Message = "Nenhum boleto encontrado para este CPF."
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func validCPF(s string) bool {
	if len(s) != 11 {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
