package credit

import (
	"context"
	"errors"
	"fmt"
)

type ImportResult struct {
	Created   []*Credit
	Conflicts []Conflict
	Invalid   []InvalidRow
}

// Conflict is a row whose id number already belongs to a different client.
type Conflict struct {
	Incoming CreateParams
	Existing *Credit
}

// InvalidRow is a row that failed field validation.
type InvalidRow struct {
	Incoming CreateParams
	Err      error
}

// ImportBatch applies each row independently: valid rows are created,
// identity conflicts and invalid rows are reported without stopping the
// batch. Rows never partially apply.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	result := &ImportResult{}

	for _, p := range params {
		c, err := s.Create(ctx, p)

		switch {
		case err == nil:
			result.Created = append(result.Created, c)

		case errors.Is(err, ErrDuplicateIdentity):
			existing, lookupErr := s.repo.ListByIDNumber(ctx, p.IDNumber)
			if lookupErr != nil {
				return nil, fmt.Errorf("looking up conflicting credit: %w", lookupErr)
			}

			conflict := Conflict{Incoming: p}
			if len(existing) > 0 {
				conflict.Existing = existing[0]
			}

			result.Conflicts = append(result.Conflicts, conflict)

		case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidAmount):
			result.Invalid = append(result.Invalid, InvalidRow{Incoming: p, Err: err})

		default:
			return nil, err
		}
	}

	return result, nil
}
