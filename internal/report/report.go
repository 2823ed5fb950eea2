// Package report computes time-bucketed expense aggregations over the
// transaction history. All three views look at expenses only (negative
// amounts) and report positive magnitudes; income never appears in them.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shavitns/expense-manager/internal/model"
)

// MonthlyTotal is total spending for one "YYYY-MM" bucket.
type MonthlyTotal struct {
	Month string
	Total decimal.Decimal
}

// YearlyTotal is total spending for one "YYYY" bucket.
type YearlyTotal struct {
	Year  string
	Total decimal.Decimal
}

// TrendPoint is total spending on one exact date.
type TrendPoint struct {
	Date  string
	Total decimal.Decimal
}

// MonthlyTotals groups expenses by the YYYY-MM prefix of their dates.
// Buckets appear in order of first occurrence in history.
func MonthlyTotals(txns []model.Transaction) []MonthlyTotal {
	keys, totals := bucket(txns, 7)
	out := make([]MonthlyTotal, len(keys))
	for i, k := range keys {
		out[i] = MonthlyTotal{Month: k, Total: totals[k]}
	}
	return out
}

// YearlyTotals groups expenses by the YYYY prefix of their dates.
// Buckets appear in order of first occurrence in history.
func YearlyTotals(txns []model.Transaction) []YearlyTotal {
	keys, totals := bucket(txns, 4)
	out := make([]YearlyTotal, len(keys))
	for i, k := range keys {
		out[i] = YearlyTotal{Year: k, Total: totals[k]}
	}
	return out
}

// SpendingTrends groups expenses by exact date, sorted ascending. This
// feeds chronological charts, so the ordering is part of the contract.
func SpendingTrends(txns []model.Transaction) []TrendPoint {
	keys, totals := bucket(txns, 0)
	out := make([]TrendPoint, len(keys))
	for i, k := range keys {
		out[i] = TrendPoint{Date: k, Total: totals[k]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// bucket sums expense magnitudes keyed by a date prefix (prefixLen 0 keys
// by the full date), recording first-occurrence key order.
func bucket(txns []model.Transaction, prefixLen int) ([]string, map[string]decimal.Decimal) {
	var keys []string
	totals := make(map[string]decimal.Decimal)

	for _, t := range txns {
		if t.Amount.Sign() >= 0 {
			continue
		}
		key := t.Date
		if prefixLen > 0 && len(key) > prefixLen {
			key = key[:prefixLen]
		}
		if _, ok := totals[key]; !ok {
			keys = append(keys, key)
		}
		totals[key] = totals[key].Add(t.Amount.Abs())
	}
	return keys, totals
}
