package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/tabular"
)

// LeumiParser parses Bank Leumi account exports. Leumi labels its columns
// in Hebrew and reports debit and credit in separate columns.
type LeumiParser struct{}

const (
	leumiColDate      = "תאריך"
	leumiColValueDate = "תאריך ערך"
	leumiColDesc      = "תיאור"
	leumiColDebit     = "חובה"
	leumiColCredit    = "זכות"
)

var leumiHeaderKeywords = []string{
	leumiColDate,
	leumiColValueDate,
	leumiColDesc,
	leumiColDebit,
	leumiColCredit,
	"סכום",
	"אסמכתא",
}

// Source returns the parser name.
func (p *LeumiParser) Source() string { return "leumi" }

// Parse reads the first table of a Leumi export and returns unsaved
// transactions. Malformed dates or amounts on individual rows do not abort
// the batch; Leumi exports are irregular enough that best-effort values per
// row beat rejecting the whole file.
func (p *LeumiParser) Parse(tables []tabular.Table) ([]model.Transaction, error) {
	if len(tables) == 0 || len(tables[0]) == 0 {
		return nil, fmt.Errorf("leumi: %w", ErrEmptyStatement)
	}
	rows := tables[0]

	headerIdx, labels, err := tabular.FindHeader(rows, leumiHeaderKeywords)
	if err != nil {
		return nil, fmt.Errorf("leumi: %w", err)
	}

	var txns []model.Transaction
	for _, row := range rows[headerIdx+1:] {
		if row.Empty() {
			continue
		}

		rec := zip(labels, row)

		date := rec[leumiColDate]
		if date == "" {
			date = rec[leumiColValueDate]
		}

		debit := parseMoney(rec[leumiColDebit])
		credit := parseMoney(rec[leumiColCredit])

		txns = append(txns, model.Transaction{
			Date:        normalizeDate(date),
			Description: strings.TrimSpace(rec[leumiColDesc]),
			Amount:      credit.Sub(debit),
		})
	}
	return txns, nil
}

// zip builds a label->value record by positional pairing of header labels
// with row cells. Cells beyond the header width are ignored.
func zip(labels []string, row tabular.Row) map[string]string {
	rec := make(map[string]string, len(labels))
	for i, label := range labels {
		if i < len(row) {
			rec[label] = strings.TrimSpace(row[i])
		} else {
			rec[label] = ""
		}
	}
	return rec
}

// parseMoney parses a bank amount cell, stripping thousands separators.
// Absent or unparsable cells count as zero.
func parseMoney(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// normalizeDate converts "DD/MM/YYYY" to ISO "YYYY-MM-DD". Anything that
// does not look like a slash date is returned as-is.
func normalizeDate(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return strings.TrimSpace(s)
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
