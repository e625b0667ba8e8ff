package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmendezv/fiado/internal/credit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCreditColumns = `
	c.id, c.client_name, c.client_last_name, c.id_number, c.phone, c.address,
	c.total_amount, c.detailed_info, c.date, c.status, c.created_at, c.updated_at,
	p.id, p.amount, p.date, p.method, p.notes, p.created_at
`

const creditJoin = `
	FROM credits c
	LEFT JOIN payments p ON p.credit_id = c.id
`

// queryCredits runs a credits+payments join and folds the payment rows into
// their credits. Expects the query ordered by credit first, then payment
// creation time, so each credit's rows arrive together.
func (s *Store) queryCredits(ctx context.Context, query string, args ...any) ([]*credit.Credit, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying credits: %w", err)
	}
	defer rows.Close()

	var credits []*credit.Credit

	byID := make(map[uuid.UUID]*credit.Credit)

	for rows.Next() {
		var (
			c         credit.Credit
			statusStr string

			payID      *uuid.UUID
			payAmount  sql.NullInt64
			payDate    sql.NullTime
			payMethod  sql.NullString
			payNotes   sql.NullString
			payCreated sql.NullTime
		)

		if err := rows.Scan(
			&c.ID, &c.ClientName, &c.ClientLastName, &c.IDNumber, &c.Phone, &c.Address,
			&c.TotalAmount, &c.DetailedInfo, &c.Date, &statusStr, &c.CreatedAt, &c.UpdatedAt,
			&payID, &payAmount, &payDate, &payMethod, &payNotes, &payCreated,
		); err != nil {
			return nil, fmt.Errorf("scanning credit: %w", err)
		}

		existing, found := byID[c.ID]
		if !found {
			c.Status = credit.Status(statusStr)
			c.Payments = []credit.Payment{}
			existing = &c
			byID[c.ID] = existing

			credits = append(credits, existing)
		}

		if payID != nil {
			existing.Payments = append(existing.Payments, credit.Payment{
				ID:        *payID,
				CreditID:  existing.ID,
				Amount:    payAmount.Int64,
				Date:      payDate.Time,
				Method:    credit.PaymentMethod(payMethod.String),
				Notes:     payNotes.String,
				CreatedAt: payCreated.Time,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credit rows: %w", err)
	}

	return credits, nil
}

func (s *Store) CreateCredit(ctx context.Context, c *credit.Credit) error {
	query := `
		INSERT INTO credits (id, client_name, client_last_name, id_number, phone, address,
			total_amount, detailed_info, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ID,
		c.ClientName,
		c.ClientLastName,
		c.IDNumber,
		c.Phone,
		c.Address,
		c.TotalAmount,
		c.DetailedInfo,
		c.Date,
		c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating credit: %w", err)
	}

	return nil
}

func (s *Store) GetCredit(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	query := `SELECT ` + selectCreditColumns + creditJoin + `
		WHERE c.id = $1
		ORDER BY p.created_at ASC`

	credits, err := s.queryCredits(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("getting credit: %w", err)
	}

	if len(credits) == 0 {
		return nil, credit.ErrNotFound
	}

	return credits[0], nil
}

func (s *Store) ListCredits(ctx context.Context, filter credit.ListFilter) ([]*credit.Credit, error) {
	query := `SELECT ` + selectCreditColumns + creditJoin + `
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Search != "" {
		query += fmt.Sprintf(` AND (c.client_name ILIKE '%%' || $%d || '%%'
			OR c.client_last_name ILIKE '%%' || $%d || '%%'
			OR c.id_number LIKE '%%' || $%d || '%%')`, argIdx, argIdx, argIdx)

		args = append(args, escapeLike(filter.Search))
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND c.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Date != nil {
		query += fmt.Sprintf(" AND c.date::date = $%d::date", argIdx)

		args = append(args, *filter.Date)
		argIdx++
	}

	query += " ORDER BY c.date ASC, c.created_at ASC, p.created_at ASC"

	return s.queryCredits(ctx, query, args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so search input matches literally,
// the same semantics the in-memory filter applies.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (s *Store) ListByIDNumber(ctx context.Context, idNumber string) ([]*credit.Credit, error) {
	query := `SELECT ` + selectCreditColumns + creditJoin + `
		WHERE c.id_number = $1
		ORDER BY c.created_at ASC, p.created_at ASC`

	return s.queryCredits(ctx, query, idNumber)
}

func (s *Store) UpdateCredit(ctx context.Context, c *credit.Credit) error {
	query := `
		UPDATE credits
		SET client_name = $1, client_last_name = $2, id_number = $3, phone = $4,
			address = $5, total_amount = $6, detailed_info = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ClientName,
		c.ClientLastName,
		c.IDNumber,
		c.Phone,
		c.Address,
		c.TotalAmount,
		c.DetailedInfo,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating credit: %w", err)
	}

	return nil
}

// DeleteCredit removes the credit and its payments. Unknown ids are a no-op.
func (s *Store) DeleteCredit(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, "DELETE FROM payments WHERE credit_id = $1", id); err != nil {
		return fmt.Errorf("deleting payments: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "DELETE FROM credits WHERE id = $1", id); err != nil {
		return fmt.Errorf("deleting credit: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// AddPayment inserts the payment and persists the credit's status in one
// database transaction.
func (s *Store) AddPayment(ctx context.Context, c *credit.Credit, p *credit.Payment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	paymentQuery := `
		INSERT INTO payments (id, credit_id, amount, date, method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	if err := dbTx.QueryRowContext(ctx, paymentQuery,
		p.ID,
		p.CreditID,
		p.Amount,
		p.Date,
		p.Method,
		p.Notes,
	).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	creditQuery := `
		UPDATE credits
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := dbTx.ExecContext(ctx, creditQuery, c.Status, c.ID); err != nil {
		return fmt.Errorf("updating credit status: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
