package provider

import (
	"fmt"
	"io"

	"github.com/shavitns/expense-manager/internal/category"
	"github.com/shavitns/expense-manager/internal/export"
	"github.com/shavitns/expense-manager/internal/history"
	"github.com/shavitns/expense-manager/internal/memory"
	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/report"
	"github.com/shavitns/expense-manager/internal/store"
)

// Local is the storage-backed Provider: all state lives in memory and is
// synchronized to the store only through the explicit Save methods.
type Local struct {
	store      *store.Store
	history    *history.Service
	categories *category.Service
	memory     *memory.Memory
}

var _ Provider = (*Local)(nil)

// Open loads all persisted state from st and returns a ready Local.
func Open(st *store.Store) (*Local, error) {
	txns, err := st.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	nodes, err := st.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	entries, err := st.LoadMemory()
	if err != nil {
		return nil, fmt.Errorf("loading memory: %w", err)
	}

	hist := history.NewService(txns)
	mem := memory.New(entries)
	return &Local{
		store:      st,
		history:    hist,
		categories: category.NewService(nodes, hist, mem),
		memory:     mem,
	}, nil
}

func (l *Local) Transactions() []model.Transaction { return l.history.All() }

func (l *Local) Transaction(id string) (model.Transaction, bool) { return l.history.Get(id) }

func (l *Local) MergeTransactions(incoming []model.Transaction) []model.Transaction {
	return l.history.Merge(incoming)
}

func (l *Local) DeleteTransaction(id string) error { return l.history.Delete(id) }

func (l *Local) Uncategorized() []model.Transaction { return l.history.Uncategorized() }

func (l *Local) SearchTransactions(query string) []model.Transaction {
	return l.history.Search(query)
}

func (l *Local) FilterByDateRange(from, to string) []model.Transaction {
	return l.history.FilterByDateRange(from, to)
}

func (l *Local) TransactionsByCategory(main string) []model.Transaction {
	return l.history.ByCategory(main)
}

func (l *Local) TransactionsBySubcategory(main, sub string) []model.Transaction {
	return l.history.BySubcategory(main, sub)
}

func (l *Local) Categories() []model.CategoryNode { return l.categories.All() }

func (l *Local) AddMainCategory(name string) (model.CategoryNode, error) {
	return l.categories.AddMain(name)
}

func (l *Local) AddSubcategory(main, sub string) (model.CategoryNode, error) {
	return l.categories.AddSub(main, sub)
}

func (l *Local) DeleteMainCategory(main string) error { return l.categories.DeleteMain(main) }

func (l *Local) DeleteSubcategory(main, sub string) error {
	return l.categories.DeleteSub(main, sub)
}

func (l *Local) UpdateTransactionCategory(id string, cat model.Category) (model.Transaction, error) {
	return l.categories.UpdateTransactionCategory(id, cat)
}

func (l *Local) AutoCategorize(description string) (model.Category, bool) {
	return l.memory.Suggest(description)
}

func (l *Local) MonthlyTotals() []MonthlyTotal { return report.MonthlyTotals(l.history.All()) }

func (l *Local) YearlyTotals() []YearlyTotal { return report.YearlyTotals(l.history.All()) }

func (l *Local) SpendingTrends() []TrendPoint { return report.SpendingTrends(l.history.All()) }

func (l *Local) SplitTransaction(id string, parts []SplitPart) ([]model.Transaction, error) {
	return l.history.Split(id, parts)
}

func (l *Local) ExportCSV(w io.Writer) error { return export.WriteCSV(w, l.history.All()) }

func (l *Local) ExportXLSX(w io.Writer) error { return export.WriteXLSX(w, l.history.All()) }

func (l *Local) SaveHistory() error { return l.store.SaveHistory(l.history.All()) }

func (l *Local) SaveCategories() error { return l.store.SaveCategories(l.categories.All()) }

func (l *Local) SaveMemory() error { return l.store.SaveMemory(l.memory.Entries()) }
