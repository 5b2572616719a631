package ingest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ricardoas/boleteiro/internal/boleto"
	"github.com/ricardoas/boleteiro/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	boletoSvc *boleto.Service
}

func NewHandler(importSvc *importer.Service, boletoSvc *boleto.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		boletoSvc: boletoSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type reportResponse struct {
	UploadID   uuid.UUID `json:"upload_id"`
	Message    string    `json:"message"`
	Total      int       `json:"total"`
	Imported   int       `json:"imported"`
	Rejected   int       `json:"rejected"`
	Duplicates int       `json:"duplicates"`
	Errors     []string  `json:"errors"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "arquivo field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(header.Filename, file)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			http.Error(w, "Formato de arquivo inválido. Por favor, utilize arquivos .xlsx ou .csv.", http.StatusBadRequest)
			return
		}

		http.Error(w, "Erro ao carregar o arquivo: "+err.Error(), http.StatusBadRequest)

		return
	}

	report := h.boletoSvc.Ingest(r.Context(), rows)

	resp := reportResponse{
		UploadID:   report.UploadID,
		Message:    report.Message(),
		Total:      report.Total,
		Imported:   report.Imported,
		Rejected:   report.Rejected,
		Duplicates: report.Duplicates,
		Errors:     report.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
