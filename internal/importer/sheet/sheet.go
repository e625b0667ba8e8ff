// Package sheet parses the semicolon-separated spreadsheet export of a
// hand-kept fiado book into credit creation params.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmendezv/fiado/internal/credit"
)

const (
	colName     = "Nombre"
	colLastName = "Apellido"
	colIDNumber = "Cédula"
	colPhone    = "Teléfono"
	colAddress  = "Dirección"
	colAmount   = "Monto"
	colDate     = "Fecha"
	colDetail   = "Detalle"
)

// Dates come in whichever of these the spreadsheet locale produced.
var dateLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02"}

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]credit.CreateParams, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Exports often have ragged trailing columns
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	cols := columnIndexes{name: -1, lastName: -1, idNumber: -1, phone: -1, address: -1, amount: -1, date: -1, detail: -1}
	headerFound := false

	var params []credit.CreateParams

	for _, row := range rows {
		// Search for the header landmark first; title rows and blank
		// lines above it are skipped.
		if !headerFound {
			if cols.fromHeader(row) {
				headerFound = true
			}

			continue
		}

		p, ok := cols.parseRow(row)
		if !ok {
			// Footer, totals row or otherwise unparsable line.
			continue
		}

		params = append(params, p)
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row found")
	}

	return params, nil
}

type columnIndexes struct {
	name, lastName, idNumber, phone, address, amount, date, detail int
}

// fromHeader maps column positions from a candidate header row. The row
// counts as the header when the name, id number and amount landmarks are all
// present. Duplicated headers keep their first position.
func (c *columnIndexes) fromHeader(row []string) bool {
	*c = columnIndexes{name: -1, lastName: -1, idNumber: -1, phone: -1, address: -1, amount: -1, date: -1, detail: -1}

	landmarks := 0

	set := func(dst *int, i int, landmark bool) {
		if *dst >= 0 {
			return
		}

		*dst = i
		if landmark {
			landmarks++
		}
	}

	for i, col := range row {
		switch strings.TrimSpace(col) {
		case colName:
			set(&c.name, i, true)
		case colLastName:
			set(&c.lastName, i, false)
		case colIDNumber:
			set(&c.idNumber, i, true)
		case colPhone:
			set(&c.phone, i, false)
		case colAddress:
			set(&c.address, i, false)
		case colAmount:
			set(&c.amount, i, true)
		case colDate:
			set(&c.date, i, false)
		case colDetail:
			set(&c.detail, i, false)
		}
	}

	return landmarks == 3
}

func (c *columnIndexes) parseRow(row []string) (credit.CreateParams, bool) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	name := field(c.name)
	if name == "" {
		return credit.CreateParams{}, false
	}

	amount, err := parseAmount(field(c.amount))
	if err != nil {
		return credit.CreateParams{}, false
	}

	p := credit.CreateParams{
		ClientName:     name,
		ClientLastName: field(c.lastName),
		IDNumber:       field(c.idNumber),
		Phone:          field(c.phone),
		Address:        field(c.address),
		TotalAmount:    amount,
		DetailedInfo:   field(c.detail),
	}

	if dateStr := field(c.date); dateStr != "" {
		for _, layout := range dateLayouts {
			if date, err := time.Parse(layout, dateStr); err == nil {
				p.Date = date
				break
			}
		}
	}

	return p, true
}

// parseAmount converts "1.234,56" or "100000" style amounts to cents.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.TrimSpace(clean)

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(val * 100)), nil
}
