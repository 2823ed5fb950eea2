package history

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shavitns/expense-manager/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(id, date, amount, desc string) model.Transaction {
	return model.Transaction{ID: id, Date: date, Amount: dec(amount), Description: desc}
}

func TestMerge_AssignsIDs(t *testing.T) {
	svc := NewService(nil)

	added := svc.Merge([]model.Transaction{
		txn("", "2024-03-05", "-50", "Cafe"),
		txn("", "2024-03-06", "-20", "Bus"),
	})
	require.Len(t, added, 2)
	assert.NotEmpty(t, added[0].ID)
	assert.NotEmpty(t, added[1].ID)
	assert.NotEqual(t, added[0].ID, added[1].ID)
	assert.Equal(t, 2, svc.Len())
}

func TestMerge_SuppressesExactTripleMatch(t *testing.T) {
	svc := NewService([]model.Transaction{
		txn("t1", "2024-03-05", "-50", "Cafe"),
	})

	added := svc.Merge([]model.Transaction{
		txn("", "2024-03-05", "-50", "Cafe"),
		txn("", "2024-03-05", "-50", "Cafe Two"),
	})

	require.Len(t, added, 1)
	assert.Equal(t, "Cafe Two", added[0].Description)
	assert.Equal(t, 2, svc.Len())

	// The original record is untouched.
	got, ok := svc.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "Cafe", got.Description)
}

func TestMerge_SingleFieldDifferenceIsDistinct(t *testing.T) {
	base := txn("t1", "2024-03-05", "-50", "Cafe")

	variants := []model.Transaction{
		txn("", "2024-03-06", "-50", "Cafe"),  // different date
		txn("", "2024-03-05", "-51", "Cafe"),  // different amount
		txn("", "2024-03-05", "-50", "Cafe!"), // different description
	}

	for _, v := range variants {
		svc := NewService([]model.Transaction{base})
		added := svc.Merge([]model.Transaction{v})
		assert.Len(t, added, 1, "a single differing field must not be merged away")
	}
}

func TestMerge_DedupWithinBatch(t *testing.T) {
	svc := NewService(nil)

	added := svc.Merge([]model.Transaction{
		txn("", "2024-03-05", "-50", "Cafe"),
		txn("", "2024-03-05", "-50", "Cafe"),
	})
	assert.Len(t, added, 1)
	assert.Equal(t, 1, svc.Len())
}

func TestMerge_AmountEqualityIgnoresScale(t *testing.T) {
	svc := NewService([]model.Transaction{
		txn("t1", "2024-03-05", "-50", "Cafe"),
	})

	added := svc.Merge([]model.Transaction{
		txn("", "2024-03-05", "-50.00", "Cafe"),
	})
	assert.Empty(t, added, "-50 and -50.00 are the same amount")
}

func TestMerge_RepeatedImportIsIdempotent(t *testing.T) {
	batch := []model.Transaction{
		txn("", "2024-03-05", "-50", "Cafe"),
		txn("", "2024-03-06", "-20", "Bus"),
	}

	svc := NewService(nil)
	require.Len(t, svc.Merge(batch), 2)
	assert.Empty(t, svc.Merge(batch), "re-importing an overlapping statement adds nothing")
	assert.Equal(t, 2, svc.Len())
}

func TestDelete(t *testing.T) {
	svc := NewService([]model.Transaction{
		txn("t1", "2024-03-05", "-50", "Cafe"),
		txn("t2", "2024-03-06", "-20", "Bus"),
	})

	require.NoError(t, svc.Delete("t1"))
	assert.Equal(t, 1, svc.Len())
	_, ok := svc.Get("t1")
	assert.False(t, ok)

	err := svc.Delete("nope")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestSetCategory(t *testing.T) {
	svc := NewService([]model.Transaction{
		txn("t1", "2024-03-05", "-50", "Cafe"),
	})

	updated, err := svc.SetCategory("t1", model.Category{Main: "Food"})
	require.NoError(t, err)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "Food", updated.Category.Main)
	assert.Empty(t, updated.Category.Sub)

	_, err = svc.SetCategory("nope", model.Category{Main: "Food"})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestClearMainAndSub(t *testing.T) {
	a := txn("t1", "2024-03-05", "-50", "Groceries run")
	a.Category = &model.Category{Main: "Food", Sub: "Groceries"}
	b := txn("t2", "2024-03-06", "-30", "Dinner")
	b.Category = &model.Category{Main: "Food"}
	c := txn("t3", "2024-03-07", "-10", "Bus")
	c.Category = &model.Category{Main: "Transport"}

	svc := NewService([]model.Transaction{a, b, c})

	svc.ClearSub("Food", "Groceries")
	got, _ := svc.Get("t1")
	require.NotNil(t, got.Category)
	assert.Equal(t, "Food", got.Category.Main)
	assert.Empty(t, got.Category.Sub)

	svc.ClearMain("Food")
	got, _ = svc.Get("t1")
	assert.True(t, got.Uncategorized())
	got, _ = svc.Get("t2")
	assert.True(t, got.Uncategorized())
	got, _ = svc.Get("t3")
	assert.False(t, got.Uncategorized())
}

func TestUncategorized(t *testing.T) {
	a := txn("t1", "2024-03-05", "-50", "Cafe")
	b := txn("t2", "2024-03-06", "-30", "Dinner")
	b.Category = &model.Category{Main: "Food"}
	c := txn("t3", "2024-03-07", "-10", "Bus")
	c.Category = &model.Category{Main: ""}

	svc := NewService([]model.Transaction{a, b, c})

	un := svc.Uncategorized()
	require.Len(t, un, 2)
	assert.Equal(t, "t1", un[0].ID)
	assert.Equal(t, "t3", un[1].ID)
}

func TestSearch(t *testing.T) {
	a := txn("t1", "2024-03-05", "-50", "Cafe Aroma")
	a.Category = &model.Category{Main: "Food", Sub: "Eating Out"}
	b := txn("t2", "2024-03-06", "-30", "Bus pass")

	svc := NewService([]model.Transaction{a, b})

	assert.Len(t, svc.Search(""), 2)
	assert.Len(t, svc.Search("aroma"), 1)
	assert.Len(t, svc.Search("eating"), 1)
	assert.Len(t, svc.Search("2024-03"), 2)
	assert.Empty(t, svc.Search("zzz"))
}

func TestFilterByDateRange(t *testing.T) {
	svc := NewService([]model.Transaction{
		txn("t1", "2024-01-10", "-40", "a"),
		txn("t2", "2024-02-01", "-10", "b"),
		txn("t3", "2024-03-15", "-20", "c"),
	})

	assert.Len(t, svc.FilterByDateRange("2024-02-01", "2024-03-15"), 2)
	assert.Len(t, svc.FilterByDateRange("", "2024-01-31"), 1)
	assert.Len(t, svc.FilterByDateRange("2024-03-16", ""), 0)
	assert.Len(t, svc.FilterByDateRange("", ""), 3)
}

func TestByCategory(t *testing.T) {
	a := txn("t1", "2024-03-05", "-50", "Groceries")
	a.Category = &model.Category{Main: "Food", Sub: "Groceries"}
	b := txn("t2", "2024-03-06", "-30", "Dinner")
	b.Category = &model.Category{Main: "Food"}

	svc := NewService([]model.Transaction{a, b})

	assert.Len(t, svc.ByCategory("Food"), 2)
	assert.Len(t, svc.BySubcategory("Food", "Groceries"), 1)
	assert.Empty(t, svc.ByCategory("Home"))
}
