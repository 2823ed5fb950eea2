package history

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shavitns/expense-manager/internal/model"
)

// ErrInvalidSplit means the split request had no parts.
var ErrInvalidSplit = errors.New("split requires at least one part")

// ErrInvalidAmount means a split part's amount was missing or not numeric.
var ErrInvalidAmount = errors.New("invalid split part amount")

// ErrInvalidCategory means a split part lacked a main category.
var ErrInvalidCategory = errors.New("split part requires a main category")

// ErrSplitSumMismatch means the part amounts did not sum to the original
// transaction's amount exactly.
var ErrSplitSumMismatch = errors.New("split parts must sum to the original amount")

// SplitPart describes one piece of a split: the raw amount text as entered
// by the caller and the category the piece should carry. The subcategory
// may be empty.
type SplitPart struct {
	Amount   string
	Category model.Category
}

// Split decomposes one transaction into several. Every validation runs
// before any mutation, so a failed split leaves history untouched:
// the transaction must exist, parts must be non-empty, every amount must
// parse as a decimal, every part needs a main category, and the part
// amounts must sum to the original amount exactly, with no rounding
// tolerance. On success the original is removed and replaced by one new
// transaction per part, each sharing the original's date and
// newline-collapsed description, carrying the part's amount and category
// under a fresh identifier. The new transactions are appended to history
// and returned. Split does not persist.
func (s *Service) Split(id string, parts []SplitPart) ([]model.Transaction, error) {
	idx := -1
	for i, t := range s.txns {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
	}
	original := s.txns[idx]

	if len(parts) == 0 {
		return nil, ErrInvalidSplit
	}

	amounts := make([]decimal.Decimal, len(parts))
	for i, p := range parts {
		d, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, p.Amount)
		}
		amounts[i] = d
	}

	for _, p := range parts {
		if p.Category.Main == "" {
			return nil, ErrInvalidCategory
		}
	}

	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	if !sum.Equal(original.Amount) {
		return nil, fmt.Errorf("%w: parts total %s, original %s",
			ErrSplitSumMismatch, sum, original.Amount)
	}

	desc := original.FlatDescription()
	created := make([]model.Transaction, len(parts))
	for i, p := range parts {
		created[i] = model.Transaction{
			ID:          uuid.NewString(),
			Date:        original.Date,
			Amount:      amounts[i],
			Description: desc,
			Category:    &model.Category{Main: p.Category.Main, Sub: p.Category.Sub},
		}
	}

	s.txns = append(s.txns[:idx], s.txns[idx+1:]...)
	s.txns = append(s.txns, created...)
	return created, nil
}
