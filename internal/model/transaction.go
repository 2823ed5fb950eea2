package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical record every core operation works on.
// Dates are ISO "YYYY-MM-DD" strings at day precision; statement parsers
// normalize source formats but keep unparsable input verbatim, so a bad row
// in a bank export never blocks the rest of the batch.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"` // negative = expense, positive = income
	Description string          `json:"description"`
	Category    *Category       `json:"category,omitempty"`
}

// Category assigns a transaction to the two-level taxonomy. Sub is
// meaningful only relative to Main; an empty Sub means "no subcategory".
type Category struct {
	Main string `json:"main"`
	Sub  string `json:"sub"`
}

// Uncategorized reports whether the transaction has no usable category.
func (t Transaction) Uncategorized() bool {
	return t.Category == nil || t.Category.Main == ""
}

// SameEntry reports whether two transactions are the same logical entry
// under the conservative duplicate policy: date, amount, and description
// must all be identical. A single differing field makes them distinct.
func (t Transaction) SameEntry(other Transaction) bool {
	return t.Date == other.Date &&
		t.Amount.Equal(other.Amount) &&
		t.Description == other.Description
}

// FlatDescription returns the description with embedded newlines collapsed
// to spaces, as the export and split contracts require.
func (t Transaction) FlatDescription() string {
	s := strings.ReplaceAll(t.Description, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
