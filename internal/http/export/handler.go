package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmendezv/fiado/internal/credit"
	"github.com/dmendezv/fiado/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/credits", h.credits)
	r.Get("/clients", h.clients)
}

func (h *Handler) credits(w http.ResponseWriter, r *http.Request) {
	filter := credit.ListFilter{
		Search: r.URL.Query().Get("q"),
	}

	if s := r.URL.Query().Get("status"); s != "" && s != "all" {
		status := credit.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		filter.Date = &t
	}

	writeAttachmentHeaders(w, "creditos")

	if err := h.svc.WriteCredits(r.Context(), w, filter); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("failed to write credits export", "error", err)
	}
}

func (h *Handler) clients(w http.ResponseWriter, r *http.Request) {
	writeAttachmentHeaders(w, "clientes")

	if err := h.svc.WriteClients(r.Context(), w); err != nil {
		slog.Error("failed to write clients export", "error", err)
	}
}

func writeAttachmentHeaders(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"%s_%s.csv\"", name, time.Now().Format("20060102")))
}
