// Package export writes the canonical transaction list out for use in
// other tools, either as delimited text or as a spreadsheet. Both formats
// share the fixed column order id, date, amount, description,
// category_main, category_sub.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shavitns/expense-manager/internal/model"
)

// Header is the exported column order.
const Header = "id,date,amount,description,category_main,category_sub"

const sheetName = "Transactions"

// WriteCSV writes transactions as delimited text. Every field is quoted,
// embedded quotes are doubled, and embedded newlines collapse to spaces;
// downstream spreadsheet tools choke on anything less uniform.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	lines := make([]string, 0, len(txns)+1)
	lines = append(lines, Header)
	for _, t := range txns {
		lines = append(lines, strings.Join(quoteFields(fields(t)), ","))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteXLSX writes transactions as a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := strings.Split(Header, ",")
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		vals := fields(t)
		row := make([]any, len(vals))
		for j, v := range vals {
			row[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func fields(t model.Transaction) []string {
	var main, sub string
	if t.Category != nil {
		main = t.Category.Main
		sub = t.Category.Sub
	}
	return []string{t.ID, t.Date, t.Amount.String(), t.FlatDescription(), main, sub}
}

func quoteFields(vals []string) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		v = strings.ReplaceAll(v, "\n", " ")
		v = strings.ReplaceAll(v, `"`, `""`)
		out[i] = `"` + v + `"`
	}
	return out
}
