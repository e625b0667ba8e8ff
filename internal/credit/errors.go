package credit

import "errors"

var (
	// ErrNotFound is returned when no credit exists with the given id.
	ErrNotFound = errors.New("credit not found")

	// ErrMissingField is returned when a required field is empty. It is
	// wrapped with the name of the offending field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidAmount is returned for amounts of zero or less.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrDuplicateIdentity is returned when an id number is already
	// registered to a client with a different name.
	ErrDuplicateIdentity = errors.New("id number belongs to a different client")

	// ErrExceedsBalance is returned when a payment is larger than the
	// remaining balance of the credit.
	ErrExceedsBalance = errors.New("payment exceeds remaining balance")
)
