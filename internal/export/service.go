// Package export renders the ledger as CSV, matching the column layout the
// sheet importer reads so an exported file can be imported back.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/dmendezv/fiado/internal/credit"
)

type Service struct {
	credits *credit.Service
}

func NewService(credits *credit.Service) *Service {
	return &Service{credits: credits}
}

var creditHeader = []string{
	"Fecha", "Nombre", "Apellido", "Cédula", "Teléfono", "Dirección",
	"Monto", "Abonado", "Saldo", "Estado", "Detalle",
}

// WriteCredits streams the credits matching the filter as semicolon CSV.
func (s *Service) WriteCredits(ctx context.Context, w io.Writer, filter credit.ListFilter) error {
	credits, err := s.credits.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing credits: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(creditHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, c := range credits {
		record := []string{
			c.Date.Format(time.DateOnly),
			c.ClientName,
			c.ClientLastName,
			c.IDNumber,
			c.Phone,
			c.Address,
			formatAmount(c.TotalAmount),
			formatAmount(c.TotalPaid()),
			formatAmount(c.RemainingBalance()),
			string(c.Status),
			c.DetailedInfo,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing credit %s: %w", c.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

var clientHeader = []string{
	"Nombre", "Apellido", "Cédula", "Teléfono",
	"Créditos", "Activos", "Total", "Abonado", "Saldo",
}

// WriteClients streams per-client summaries as semicolon CSV.
func (s *Service) WriteClients(ctx context.Context, w io.Writer) error {
	summaries, err := s.credits.ClientSummaries(ctx)
	if err != nil {
		return fmt.Errorf("summarizing clients: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(clientHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, sum := range summaries {
		record := []string{
			sum.ClientName,
			sum.ClientLastName,
			sum.IDNumber,
			sum.Phone,
			fmt.Sprintf("%d", sum.Credits),
			fmt.Sprintf("%d", sum.ActiveCredits),
			formatAmount(sum.TotalCredit),
			formatAmount(sum.TotalPaid),
			formatAmount(sum.RemainingBalance()),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing client %s: %w", sum.IDNumber, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatAmount renders cents with a comma decimal separator, the format the
// importer parses back.
func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}
