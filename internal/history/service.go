// Package history owns the in-memory transaction history and the
// operations that mutate it: reconciling merges, category updates,
// deletions, and splits. The history is the single source of truth for
// every read and aggregate view; persistence is a separate, explicit step
// performed by the caller through the store.
package history

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shavitns/expense-manager/internal/model"
)

// ErrTransactionNotFound means no transaction in history has the given ID.
var ErrTransactionNotFound = errors.New("transaction not found")

// Service provides business logic over the transaction history.
type Service struct {
	txns []model.Transaction
}

// NewService creates a Service over an existing history slice.
func NewService(txns []model.Transaction) *Service {
	return &Service{txns: txns}
}

// All returns the full history in order.
func (s *Service) All() []model.Transaction {
	return s.txns
}

// Len returns the number of transactions in history.
func (s *Service) Len() int { return len(s.txns) }

// Get returns the transaction with the given ID.
func (s *Service) Get(id string) (model.Transaction, bool) {
	for _, t := range s.txns {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// Merge reconciles newly parsed transactions into history. The operation
// is additive only: existing records are never modified or removed. A
// candidate is suppressed as a duplicate only when date, amount, and
// description all exactly match a record already in history or already
// accepted from this batch; same-day same-amount transactions with
// different descriptions are common and legitimate, so anything less than
// a full triple match is treated as distinct. Genuinely new records get a
// fresh unique identifier and are appended in batch order. Returns the
// records that were actually added. Merge does not persist.
func (s *Service) Merge(incoming []model.Transaction) []model.Transaction {
	index := newDupIndex(s.txns)

	var added []model.Transaction
	for _, t := range incoming {
		if index.seen(t) {
			continue
		}
		t.ID = uuid.NewString()
		s.txns = append(s.txns, t)
		index.add(t)
		added = append(added, t)
	}
	return added
}

// Delete removes the transaction with the given ID from history.
func (s *Service) Delete(id string) error {
	for i, t := range s.txns {
		if t.ID == id {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
}

// SetCategory assigns a category to the transaction with the given ID and
// returns the updated record. An absent subcategory is normalized to the
// empty string.
func (s *Service) SetCategory(id string, cat model.Category) (model.Transaction, error) {
	for i := range s.txns {
		if s.txns[i].ID == id {
			s.txns[i].Category = &model.Category{Main: cat.Main, Sub: cat.Sub}
			return s.txns[i], nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
}

// ClearMain resets the category of every transaction whose main category
// matches, leaving them uncategorized. Used by the taxonomy cascade.
func (s *Service) ClearMain(main string) {
	for i := range s.txns {
		c := s.txns[i].Category
		if c != nil && c.Main == main {
			s.txns[i].Category = nil
		}
	}
}

// ClearSub resets only the subcategory of every transaction matching both
// main and sub, keeping the main category.
func (s *Service) ClearSub(main, sub string) {
	for i := range s.txns {
		c := s.txns[i].Category
		if c != nil && c.Main == main && c.Sub == sub {
			s.txns[i].Category = &model.Category{Main: main}
		}
	}
}

// Uncategorized returns the transactions with no usable category.
func (s *Service) Uncategorized() []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if t.Uncategorized() {
			out = append(out, t)
		}
	}
	return out
}

// Search returns transactions matching the query, case-insensitively,
// across description, amount, date, and category names. An empty query
// matches everything.
func (s *Service) Search(query string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]model.Transaction, len(s.txns))
		copy(out, s.txns)
		return out
	}

	var out []model.Transaction
	for _, t := range s.txns {
		var main, sub string
		if t.Category != nil {
			main = strings.ToLower(t.Category.Main)
			sub = strings.ToLower(t.Category.Sub)
		}
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(t.Amount.String(), q) ||
			strings.Contains(strings.ToLower(t.Date), q) ||
			strings.Contains(main, q) ||
			strings.Contains(sub, q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDateRange returns transactions with from <= date <= to. Either
// bound may be empty to leave that side open. ISO dates compare correctly
// as strings.
func (s *Service) FilterByDateRange(from, to string) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if from != "" && t.Date < from {
			continue
		}
		if to != "" && t.Date > to {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ByCategory returns transactions whose main category matches.
func (s *Service) ByCategory(main string) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if t.Category != nil && t.Category.Main == main {
			out = append(out, t)
		}
	}
	return out
}

// BySubcategory returns transactions matching both main and sub.
func (s *Service) BySubcategory(main, sub string) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if t.Category != nil && t.Category.Main == main && t.Category.Sub == sub {
			out = append(out, t)
		}
	}
	return out
}

// dupIndex supports the conservative duplicate check: records grouped by
// date and description, amounts compared with decimal equality so that
// "50" and "50.00" count as the same amount.
type dupIndex struct {
	byKey map[string][]model.Transaction
}

func newDupIndex(txns []model.Transaction) *dupIndex {
	idx := &dupIndex{byKey: make(map[string][]model.Transaction, len(txns))}
	for _, t := range txns {
		idx.add(t)
	}
	return idx
}

func (idx *dupIndex) key(t model.Transaction) string {
	return t.Date + "\x00" + t.Description
}

func (idx *dupIndex) add(t model.Transaction) {
	k := idx.key(t)
	idx.byKey[k] = append(idx.byKey[k], t)
}

func (idx *dupIndex) seen(t model.Transaction) bool {
	for _, existing := range idx.byKey[idx.key(t)] {
		if existing.Amount.Equal(t.Amount) {
			return true
		}
	}
	return false
}
