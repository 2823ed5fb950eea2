// Package provider exposes the whole application core behind one data
// provider contract: reconciliation, categorization, aggregation, splits,
// and export, backed by the persistent store.
//
// State is held by a single in-memory instance and accessed from one
// logical flow at a time. The core provides no mutual exclusion between
// processes; callers that might run concurrent load/mutate/save sequences
// against the same data file must serialize them themselves.
package provider

import (
	"io"

	"github.com/shavitns/expense-manager/internal/history"
	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/report"
)

// Aliases so callers only need this package for the full surface.
type (
	MonthlyTotal = report.MonthlyTotal
	YearlyTotal  = report.YearlyTotal
	TrendPoint   = report.TrendPoint
	SplitPart    = history.SplitPart
)

// Provider is the full operation surface of the expense core. Concrete
// implementations are storage-backed; the compiler enforces completeness,
// so no throwing stubs are needed.
type Provider interface {
	// History access and reconciliation.
	Transactions() []model.Transaction
	Transaction(id string) (model.Transaction, bool)
	MergeTransactions(incoming []model.Transaction) []model.Transaction
	DeleteTransaction(id string) error
	Uncategorized() []model.Transaction
	SearchTransactions(query string) []model.Transaction
	FilterByDateRange(from, to string) []model.Transaction
	TransactionsByCategory(main string) []model.Transaction
	TransactionsBySubcategory(main, sub string) []model.Transaction

	// Taxonomy and categorization.
	Categories() []model.CategoryNode
	AddMainCategory(name string) (model.CategoryNode, error)
	AddSubcategory(main, sub string) (model.CategoryNode, error)
	DeleteMainCategory(main string) error
	DeleteSubcategory(main, sub string) error
	UpdateTransactionCategory(id string, cat model.Category) (model.Transaction, error)
	AutoCategorize(description string) (model.Category, bool)

	// Aggregation and splitting.
	MonthlyTotals() []MonthlyTotal
	YearlyTotals() []YearlyTotal
	SpendingTrends() []TrendPoint
	SplitTransaction(id string, parts []SplitPart) ([]model.Transaction, error)

	// Export sinks.
	ExportCSV(w io.Writer) error
	ExportXLSX(w io.Writer) error

	// Explicit persistence. Mutating operations above never save; a failed
	// save leaves retrying to the caller.
	SaveHistory() error
	SaveCategories() error
	SaveMemory() error
}
