// Package decode turns raw statement files into ordered tables of cell
// text. It knows nothing about banks or columns; everything after the byte
// level is the parser's job.
package decode

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/shavitns/expense-manager/internal/tabular"
)

// supported lists the statement file extensions the decoder accepts.
var supported = []string{".csv", ".xls", ".xlsx"}

// Supported reports whether the file's extension is one we can decode.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, s := range supported {
		if ext == s {
			return true
		}
	}
	return false
}

// File decodes a statement file into raw tables based on its extension.
func File(path string) ([]tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSV(f)
	case ".xls":
		return LegacyWorkbook(f)
	case ".xlsx":
		return Workbook(f)
	default:
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}
}

// CSV decodes delimited text into a single table. Bank exports frequently
// have ragged rows, so per-record field counts are not enforced.
func CSV(r io.Reader) ([]tabular.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	table := make(tabular.Table, len(records))
	for i, rec := range records {
		table[i] = tabular.Row(rec)
	}
	return []tabular.Table{table}, nil
}

// Workbook decodes an OOXML spreadsheet into one table per sheet, in
// sheet order.
func Workbook(r io.Reader) ([]tabular.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	defer f.Close()

	var tables []tabular.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		table := make(tabular.Table, len(rows))
		for i, rec := range rows {
			table[i] = tabular.Row(rec)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// LegacyWorkbook decodes a pre-OOXML binary workbook into one table per
// sheet, in sheet order. Leumi still offers these alongside xlsx.
func LegacyWorkbook(r io.ReadSeeker) ([]tabular.Table, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("reading legacy workbook: %w", err)
	}

	var tables []tabular.Table
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		table := make(tabular.Table, 0, int(sheet.MaxRow)+1)
		for ri := 0; ri <= int(sheet.MaxRow); ri++ {
			row := sheet.Row(ri)
			if row == nil {
				table = append(table, tabular.Row{})
				continue
			}
			cells := make(tabular.Row, row.LastCol())
			for ci := range cells {
				cells[ci] = row.Col(ci)
			}
			table = append(table, cells)
		}
		tables = append(tables, table)
	}
	return tables, nil
}
