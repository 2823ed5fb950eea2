// Package tabular cleans raw statement tables before parsing: it strips the
// markup noise some bank export tools prepend and locates the real header
// row inside what remains.
package tabular

import (
	"errors"
	"regexp"
	"strings"
)

// Row is one table row: cell text in column order.
type Row []string

// Table is an ordered sequence of rows as produced by the decoding layer.
type Table []Row

// ErrHeaderNotFound means no row matched enough header keywords. This is
// fatal for the file; there is no partial parse.
var ErrHeaderNotFound = errors.New("header row not found")

// datePattern marks the first real statement row. Leumi HTML exports bury
// the table under <html>/<style> preamble rows; the first DD/MM/YYYY cell
// is the reliable signal that the data has started.
var datePattern = regexp.MustCompile(`[0-9]{2}/[0-9]{2}/[0-9]{4}`)

var noisePrefixes = []string{"<html", "<HTML"}

var noiseFragments = []string{"<head", "<meta", "<style"}

// Joined returns the row's cells concatenated with spaces, trimmed.
func (r Row) Joined() string {
	return strings.TrimSpace(strings.Join(r, " "))
}

// Empty reports whether every cell is blank or whitespace.
func (r Row) Empty() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isNoise(text string) bool {
	for _, p := range noisePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	for _, f := range noiseFragments {
		if strings.Contains(text, f) {
			return true
		}
	}
	return false
}

// StripNoise drops leading rows that belong to a markup preamble rather
// than the statement table. Scanning stops at the first row that matches a
// date pattern or stops matching the noise markers; that row and everything
// after it are kept verbatim.
func StripNoise(tables []Table) []Table {
	out := make([]Table, len(tables))
	for ti, table := range tables {
		started := false
		var kept Table
		for _, row := range table {
			if !started {
				text := row.Joined()
				if datePattern.MatchString(text) || !isNoise(text) {
					started = true
				} else {
					continue
				}
			}
			kept = append(kept, row)
		}
		out[ti] = kept
	}
	return out
}

// FindHeader scans rows for the first one whose cells collectively contain
// at least two of the keywords, and returns its index plus the trimmed cell
// values as column labels. Rows strictly after the header are the candidate
// data rows.
func FindHeader(rows Table, keywords []string) (int, []string, error) {
	for i, row := range rows {
		matches := 0
		for _, cell := range row {
			for _, kw := range keywords {
				if strings.Contains(cell, kw) {
					matches++
					break
				}
			}
		}
		if matches >= 2 {
			labels := make([]string, len(row))
			for j, cell := range row {
				labels[j] = strings.TrimSpace(cell)
			}
			return i, labels, nil
		}
	}
	return 0, nil, ErrHeaderNotFound
}
