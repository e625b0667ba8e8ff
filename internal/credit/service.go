package credit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=credit
type Repository interface {
	CreateCredit(ctx context.Context, c *Credit) error
	GetCredit(ctx context.Context, id uuid.UUID) (*Credit, error)
	UpdateCredit(ctx context.Context, c *Credit) error
	DeleteCredit(ctx context.Context, id uuid.UUID) error

	ListCredits(ctx context.Context, filter ListFilter) ([]*Credit, error)
	ListByIDNumber(ctx context.Context, idNumber string) ([]*Credit, error)

	// AddPayment persists the payment and the credit's (possibly updated)
	// status in a single atomic step.
	AddPayment(ctx context.Context, c *Credit, p *Payment) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ClientName     string
	ClientLastName string
	IDNumber       string
	Phone          string
	Address        string
	TotalAmount    int64
	DetailedInfo   string
	Date           time.Time // Zero value means today.
}

type PaymentParams struct {
	Amount int64
	Date   time.Time // Zero value means today.
	Method PaymentMethod
	Notes  string
}

// ListFilter narrows the credits returned by List. Zero values match
// everything.
type ListFilter struct {
	Search string
	Status *Status
	Date   *time.Time
}

// Create validates the input, enforces the client identity rule and stores a
// new active credit with no payments.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Credit, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	if err := s.checkIdentity(ctx, params, uuid.Nil); err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	c := &Credit{
		ID:             uuid.New(),
		ClientName:     params.ClientName,
		ClientLastName: params.ClientLastName,
		IDNumber:       params.IDNumber,
		Phone:          params.Phone,
		Address:        params.Address,
		TotalAmount:    params.TotalAmount,
		DetailedInfo:   params.DetailedInfo,
		Date:           date,
		Status:         StatusActive,
		Payments:       []Payment{},
	}

	if err := s.repo.CreateCredit(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Update replaces the client and amount fields of an existing credit. The
// creation date, status and payments of the original record are preserved.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Credit, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	c, err := s.repo.GetCredit(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkIdentity(ctx, params, id); err != nil {
		return nil, err
	}

	c.ClientName = params.ClientName
	c.ClientLastName = params.ClientLastName
	c.IDNumber = params.IDNumber
	c.Phone = params.Phone
	c.Address = params.Address
	c.TotalAmount = params.TotalAmount
	c.DetailedInfo = params.DetailedInfo

	if err := s.repo.UpdateCredit(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes the credit and all of its payments. Deleting an unknown id
// is a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCredit(ctx, id)
}

// RecordPayment appends a payment to the credit. The amount must not exceed
// the remaining balance; when the balance reaches zero the credit becomes
// paid. This is the only operation that changes a credit's status.
func (s *Service) RecordPayment(ctx context.Context, creditID uuid.UUID, params PaymentParams) (*Credit, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	c, err := s.repo.GetCredit(ctx, creditID)
	if err != nil {
		return nil, err
	}

	if params.Amount > c.RemainingBalance() {
		return nil, ErrExceedsBalance
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	method := params.Method
	if method == "" {
		method = MethodCash
	}

	p := Payment{
		ID:       uuid.New(),
		CreditID: c.ID,
		Amount:   params.Amount,
		Date:     date,
		Method:   method,
		Notes:    params.Notes,
	}

	c.Payments = append(c.Payments, p)
	if c.TotalPaid() >= c.TotalAmount {
		c.Status = StatusPaid
	}

	if err := s.repo.AddPayment(ctx, c, &p); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Credit, error) {
	return s.repo.GetCredit(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Credit, error) {
	return s.repo.ListCredits(ctx, filter)
}

// ClientSummaries aggregates all stored credits by client identity.
func (s *Service) ClientSummaries(ctx context.Context) ([]ClientSummary, error) {
	credits, err := s.repo.ListCredits(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	return Summarize(credits), nil
}

func validateParams(params CreateParams) error {
	required := []struct {
		name  string
		value string
	}{
		{"client_name", params.ClientName},
		{"client_last_name", params.ClientLastName},
		{"id_number", params.IDNumber},
		{"phone", params.Phone},
		{"address", params.Address},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if params.TotalAmount <= 0 {
		return ErrInvalidAmount
	}

	return nil
}

// checkIdentity rejects the params when another credit carries the same id
// number under a different client name. exclude skips the record being
// edited.
func (s *Service) checkIdentity(ctx context.Context, params CreateParams, exclude uuid.UUID) error {
	existing, err := s.repo.ListByIDNumber(ctx, params.IDNumber)
	if err != nil {
		return fmt.Errorf("checking client identity: %w", err)
	}

	for _, c := range existing {
		if c.ID == exclude {
			continue
		}

		if !c.SamePerson(params.ClientName, params.ClientLastName) {
			return ErrDuplicateIdentity
		}
	}

	return nil
}
