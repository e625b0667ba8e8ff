// Package jsonstore persists the full credit collection as a single JSON
// document. Every mutation rewrites the whole file, last writer wins; a crash
// between mutations can lose the latest change but never corrupts what was
// already written, because the file is replaced atomically via rename.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmendezv/fiado/internal/credit"
)

type Store struct {
	mu      sync.Mutex
	path    string
	credits []*credit.Credit
}

// Open loads the collection from path. A missing file starts an empty ledger.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, fmt.Errorf("reading ledger file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding ledger file: %w", err)
	}

	s.credits = fromDocument(doc)

	return s, nil
}

func (s *Store) CreateCredit(_ context.Context, c *credit.Credit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = &now

	s.credits = append(s.credits, cloneCredit(c))

	return s.save()
}

func (s *Store) GetCredit(_ context.Context, id uuid.UUID) (*credit.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return nil, credit.ErrNotFound
	}

	return cloneCredit(c), nil
}

func (s *Store) UpdateCredit(_ context.Context, c *credit.Credit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.find(c.ID)
	if stored == nil {
		return credit.ErrNotFound
	}

	now := time.Now()
	c.UpdatedAt = &now
	*stored = *cloneCredit(c)

	return s.save()
}

func (s *Store) DeleteCredit(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.credits[:0]

	for _, c := range s.credits {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if len(kept) == len(s.credits) {
		// Nothing removed, nothing to write.
		return nil
	}

	s.credits = kept

	return s.save()
}

func (s *Store) ListCredits(_ context.Context, filter credit.ListFilter) ([]*credit.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*credit.Credit

	for _, c := range s.credits {
		if filter.Matches(c) {
			out = append(out, cloneCredit(c))
		}
	}

	return out, nil
}

func (s *Store) ListByIDNumber(_ context.Context, idNumber string) ([]*credit.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*credit.Credit

	for _, c := range s.credits {
		if c.IDNumber == idNumber {
			out = append(out, cloneCredit(c))
		}
	}

	return out, nil
}

func (s *Store) AddPayment(_ context.Context, c *credit.Credit, p *credit.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.find(c.ID)
	if stored == nil {
		return credit.ErrNotFound
	}

	now := time.Now()
	p.CreatedAt = now

	stored.Payments = append(stored.Payments, *p)
	stored.Status = c.Status
	stored.UpdatedAt = &now

	return s.save()
}

func (s *Store) find(id uuid.UUID) *credit.Credit {
	for _, c := range s.credits {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// save rewrites the whole document. Callers must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(toDocument(s.credits), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing ledger file: %w", err)
	}

	return nil
}

func cloneCredit(c *credit.Credit) *credit.Credit {
	clone := *c
	clone.Payments = make([]credit.Payment, len(c.Payments))
	copy(clone.Payments, c.Payments)

	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		clone.UpdatedAt = &t
	}

	return &clone
}
