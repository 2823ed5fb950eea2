package store

import (
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shavitns/expense-manager/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHistoryRoundtrip(t *testing.T) {
	s := openTestStore(t)

	txns := []model.Transaction{
		{ID: "t1", Date: "2024-03-05", Amount: decimal.RequireFromString("-50.25"),
			Description: "Cafe", Category: &model.Category{Main: "Food", Sub: "Eating Out"}},
		{ID: "t2", Date: "2024-03-06", Amount: decimal.RequireFromString("1200"),
			Description: "Salary"},
	}
	require.NoError(t, s.SaveHistory(txns))

	got, err := s.LoadHistory()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("-50.25")))
	require.NotNil(t, got[0].Category)
	assert.Equal(t, "Eating Out", got[0].Category.Sub)
	assert.Nil(t, got[1].Category)
}

func TestCategoriesRoundtrip(t *testing.T) {
	s := openTestStore(t)

	nodes := []model.CategoryNode{
		{Name: "Food", Subcategories: []string{"Groceries", "Eating Out"}},
		{Name: "Transport", Subcategories: []string{}},
	}
	require.NoError(t, s.SaveCategories(nodes))

	got, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, nodes, got)
}

func TestMemoryRoundtrip(t *testing.T) {
	s := openTestStore(t)

	entries := map[string]model.Category{
		"cafe aroma": {Main: "Food", Sub: "Eating Out"},
	}
	require.NoError(t, s.SaveMemory(entries))

	got, err := s.LoadMemory()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestLoad_Absent(t *testing.T) {
	s := openTestStore(t)

	txns, err := s.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, txns)

	nodes, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, nodes)

	entries, err := s.LoadMemory()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_CorruptBlobRecoversEmpty(t *testing.T) {
	s := openTestStore(t)

	// Corrupt all three blobs behind the store's back.
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, key := range []string{historyKey, categoriesKey, memoryKey} {
			if err := b.Put([]byte(key), []byte("{not json")); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	// Corruption never surfaces as an error, only as empty state.
	txns, err := s.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, txns)

	nodes, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, nodes)

	entries, err := s.LoadMemory()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
