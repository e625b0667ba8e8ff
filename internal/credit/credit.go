package credit

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a credit.
type Status string

const (
	StatusActive  Status = "active"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// PaymentMethod represents how a payment was settled.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodCard     PaymentMethod = "card"
	MethodCheck    PaymentMethod = "check"
	MethodOther    PaymentMethod = "other"
)

// Credit represents one extension of store credit to a client.
type Credit struct {
	ID             uuid.UUID
	ClientName     string
	ClientLastName string
	IDNumber       string
	Phone          string
	Address        string
	TotalAmount    int64 // Amount in cents
	DetailedInfo   string
	Date           time.Time
	Status         Status
	Payments       []Payment
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Payment is a partial or full settlement recorded against a credit.
// Payments are immutable once recorded; there is no edit or reversal.
type Payment struct {
	ID        uuid.UUID
	CreditID  uuid.UUID
	Amount    int64 // Amount in cents
	Date      time.Time
	Method    PaymentMethod
	Notes     string
	CreatedAt time.Time
}

// TotalPaid returns the sum of all recorded payments.
func (c *Credit) TotalPaid() int64 {
	var total int64
	for _, p := range c.Payments {
		total += p.Amount
	}

	return total
}

// RemainingBalance returns the principal minus recorded payments.
func (c *Credit) RemainingBalance() int64 {
	return c.TotalAmount - c.TotalPaid()
}

// IdentityKey identifies the client behind the credit. Two credits with the
// same key belong to the same person.
func (c *Credit) IdentityKey() string {
	return IdentityKey(c.ClientName, c.ClientLastName, c.IDNumber)
}

// IdentityKey builds the case-insensitive client identity key from a name
// pair and an id number.
func IdentityKey(name, lastName, idNumber string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" +
		strings.ToLower(strings.TrimSpace(lastName)) + "|" +
		strings.ToLower(strings.TrimSpace(idNumber))
}

// SamePerson reports whether the credit's client matches the given name pair,
// ignoring case and surrounding whitespace.
func (c *Credit) SamePerson(name, lastName string) bool {
	return strings.EqualFold(strings.TrimSpace(c.ClientName), strings.TrimSpace(name)) &&
		strings.EqualFold(strings.TrimSpace(c.ClientLastName), strings.TrimSpace(lastName))
}
