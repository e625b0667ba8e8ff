package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmendezv/fiado/internal/credit"
	"github.com/dmendezv/fiado/internal/encoding"
	"github.com/dmendezv/fiado/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	creditSvc *credit.Service
}

func NewHandler(importSvc *importer.Service, creditSvc *credit.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		creditSvc: creditSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type createParamsDTO struct {
	ClientName     string    `json:"client_name"`
	ClientLastName string    `json:"client_last_name"`
	IDNumber       string    `json:"id_number"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	TotalAmount    int64     `json:"total_amount"`
	DetailedInfo   string    `json:"detailed_info,omitempty"`
	Date           time.Time `json:"date"`
}

type createdDTO struct {
	ID             uuid.UUID `json:"id"`
	ClientName     string    `json:"client_name"`
	ClientLastName string    `json:"client_last_name"`
	IDNumber       string    `json:"id_number"`
	TotalAmount    int64     `json:"total_amount"`
	Date           time.Time `json:"date"`
}

type conflictDTO struct {
	Incoming createParamsDTO `json:"incoming"`
	Existing *createdDTO     `json:"existing,omitempty"`
}

type invalidDTO struct {
	Incoming createParamsDTO `json:"incoming"`
	Reason   string          `json:"reason"`
}

type importResponse struct {
	Imported  int           `json:"imported"`
	Credits   []createdDTO  `json:"credits"`
	Conflicts []conflictDTO `json:"conflicts,omitempty"`
	Invalid   []invalidDTO  `json:"invalid,omitempty"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatSheet
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	utf8File, err := encoding.NewUTF8Reader(file)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	params, err := h.importSvc.Import(format, utf8File)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.creditSvc.ImportBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{
		Imported: len(result.Created),
		Credits:  make([]createdDTO, 0, len(result.Created)),
	}

	for _, c := range result.Created {
		resp.Credits = append(resp.Credits, toCreatedDTO(c))
	}

	for _, conflict := range result.Conflicts {
		dto := conflictDTO{Incoming: toParamsDTO(conflict.Incoming)}
		if conflict.Existing != nil {
			existing := toCreatedDTO(conflict.Existing)
			dto.Existing = &existing
		}

		resp.Conflicts = append(resp.Conflicts, dto)
	}

	for _, invalid := range result.Invalid {
		resp.Invalid = append(resp.Invalid, invalidDTO{
			Incoming: toParamsDTO(invalid.Incoming),
			Reason:   invalid.Err.Error(),
		})
	}

	status := http.StatusCreated
	if len(resp.Conflicts) > 0 || len(resp.Invalid) > 0 {
		// Partial success: some rows were rejected.
		status = http.StatusMultiStatus
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toCreatedDTO(c *credit.Credit) createdDTO {
	return createdDTO{
		ID:             c.ID,
		ClientName:     c.ClientName,
		ClientLastName: c.ClientLastName,
		IDNumber:       c.IDNumber,
		TotalAmount:    c.TotalAmount,
		Date:           c.Date,
	}
}

func toParamsDTO(p credit.CreateParams) createParamsDTO {
	return createParamsDTO{
		ClientName:     p.ClientName,
		ClientLastName: p.ClientLastName,
		IDNumber:       p.IDNumber,
		Phone:          p.Phone,
		Address:        p.Address,
		TotalAmount:    p.TotalAmount,
		DetailedInfo:   p.DetailedInfo,
		Date:           p.Date,
	}
}
