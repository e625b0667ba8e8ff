package credit

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmendezv/fiado/internal/credit"
)

type creditResponse struct {
	ID               uuid.UUID         `json:"id"`
	ClientName       string            `json:"client_name"`
	ClientLastName   string            `json:"client_last_name"`
	IDNumber         string            `json:"id_number"`
	Phone            string            `json:"phone"`
	Address          string            `json:"address"`
	TotalAmount      int64             `json:"total_amount"`
	DetailedInfo     string            `json:"detailed_info,omitempty"`
	Date             time.Time         `json:"date"`
	Status           credit.Status     `json:"status"`
	TotalPaid        int64             `json:"total_paid"`
	RemainingBalance int64             `json:"remaining_balance"`
	Payments         []paymentResponse `json:"payments"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at,omitempty"`
}

type paymentResponse struct {
	ID     uuid.UUID            `json:"id"`
	Amount int64                `json:"amount"`
	Date   time.Time            `json:"date"`
	Method credit.PaymentMethod `json:"method"`
	Notes  string               `json:"notes,omitempty"`
}

type clientSummaryResponse struct {
	ClientName       string `json:"client_name"`
	ClientLastName   string `json:"client_last_name"`
	IDNumber         string `json:"id_number"`
	Phone            string `json:"phone"`
	Credits          int    `json:"credits"`
	ActiveCredits    int    `json:"active_credits"`
	TotalCredit      int64  `json:"total_credit"`
	TotalPaid        int64  `json:"total_paid"`
	RemainingBalance int64  `json:"remaining_balance"`
}

func toResponse(c *credit.Credit) creditResponse {
	payments := make([]paymentResponse, 0, len(c.Payments))
	for _, p := range c.Payments {
		payments = append(payments, paymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Date:   p.Date,
			Method: p.Method,
			Notes:  p.Notes,
		})
	}

	return creditResponse{
		ID:               c.ID,
		ClientName:       c.ClientName,
		ClientLastName:   c.ClientLastName,
		IDNumber:         c.IDNumber,
		Phone:            c.Phone,
		Address:          c.Address,
		TotalAmount:      c.TotalAmount,
		DetailedInfo:     c.DetailedInfo,
		Date:             c.Date,
		Status:           c.Status,
		TotalPaid:        c.TotalPaid(),
		RemainingBalance: c.RemainingBalance(),
		Payments:         payments,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toResponseList(credits []*credit.Credit) []creditResponse {
	resp := make([]creditResponse, len(credits))
	for i, c := range credits {
		resp[i] = toResponse(c)
	}

	return resp
}

func toSummaryResponse(s credit.ClientSummary) clientSummaryResponse {
	return clientSummaryResponse{
		ClientName:       s.ClientName,
		ClientLastName:   s.ClientLastName,
		IDNumber:         s.IDNumber,
		Phone:            s.Phone,
		Credits:          s.Credits,
		ActiveCredits:    s.ActiveCredits,
		TotalCredit:      s.TotalCredit,
		TotalPaid:        s.TotalPaid,
		RemainingBalance: s.RemainingBalance(),
	}
}
