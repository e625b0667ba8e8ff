package jsonstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmendezv/fiado/internal/credit"
)

// document is the on-disk shape of the ledger file.
type document struct {
	Credits []creditRecord `json:"credits"`
}

type creditRecord struct {
	ID             uuid.UUID       `json:"id"`
	ClientName     string          `json:"client_name"`
	ClientLastName string          `json:"client_last_name"`
	IDNumber       string          `json:"id_number"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	TotalAmount    int64           `json:"total_amount"`
	DetailedInfo   string          `json:"detailed_info,omitempty"`
	Date           time.Time       `json:"date"`
	Status         credit.Status   `json:"status"`
	Payments       []paymentRecord `json:"payments"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

type paymentRecord struct {
	ID        uuid.UUID            `json:"id"`
	Amount    int64                `json:"amount"`
	Date      time.Time            `json:"date"`
	Method    credit.PaymentMethod `json:"method"`
	Notes     string               `json:"notes,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func toDocument(credits []*credit.Credit) document {
	doc := document{Credits: make([]creditRecord, 0, len(credits))}

	for _, c := range credits {
		rec := creditRecord{
			ID:             c.ID,
			ClientName:     c.ClientName,
			ClientLastName: c.ClientLastName,
			IDNumber:       c.IDNumber,
			Phone:          c.Phone,
			Address:        c.Address,
			TotalAmount:    c.TotalAmount,
			DetailedInfo:   c.DetailedInfo,
			Date:           c.Date,
			Status:         c.Status,
			Payments:       make([]paymentRecord, 0, len(c.Payments)),
			CreatedAt:      c.CreatedAt,
			UpdatedAt:      c.UpdatedAt,
		}

		for _, p := range c.Payments {
			rec.Payments = append(rec.Payments, paymentRecord{
				ID:        p.ID,
				Amount:    p.Amount,
				Date:      p.Date,
				Method:    p.Method,
				Notes:     p.Notes,
				CreatedAt: p.CreatedAt,
			})
		}

		doc.Credits = append(doc.Credits, rec)
	}

	return doc
}

func fromDocument(doc document) []*credit.Credit {
	credits := make([]*credit.Credit, 0, len(doc.Credits))

	for _, rec := range doc.Credits {
		c := &credit.Credit{
			ID:             rec.ID,
			ClientName:     rec.ClientName,
			ClientLastName: rec.ClientLastName,
			IDNumber:       rec.IDNumber,
			Phone:          rec.Phone,
			Address:        rec.Address,
			TotalAmount:    rec.TotalAmount,
			DetailedInfo:   rec.DetailedInfo,
			Date:           rec.Date,
			Status:         rec.Status,
			Payments:       make([]credit.Payment, 0, len(rec.Payments)),
			CreatedAt:      rec.CreatedAt,
			UpdatedAt:      rec.UpdatedAt,
		}

		for _, p := range rec.Payments {
			c.Payments = append(c.Payments, credit.Payment{
				ID:        p.ID,
				CreditID:  rec.ID,
				Amount:    p.Amount,
				Date:      p.Date,
				Method:    p.Method,
				Notes:     p.Notes,
				CreatedAt: p.CreatedAt,
			})
		}

		credits = append(credits, c)
	}

	return credits
}
