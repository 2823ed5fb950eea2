// Package store is the persistence collaborator: three independent JSON
// blobs (history, taxonomy, memory) under stable keys in a single bolt
// bucket. A corrupt blob is downgraded to "absent" with a logged warning
// instead of an error, since hard-failing every startup after one bad
// write is worse than losing a cache-like structure. Saves are
// all-or-nothing; the store never retries internally.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/rs/zerolog"

	"github.com/shavitns/expense-manager/internal/model"
)

var bucketName = []byte("expense-manager")

// The original web version of this tool kept these exact localStorage
// keys; they are preserved so exported state stays recognizable.
const (
	historyKey    = "expense_history"
	categoriesKey = "category_list"
	memoryKey     = "category_memory"
)

// Store persists application state in a bolt database file.
type Store struct {
	db  *bolt.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the bolt file at path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening data file %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) load(key string) ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			blob = bytes.Clone(v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	return blob, nil
}

func (s *Store) save(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), blob)
	}); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// decode unmarshals a blob into out, treating corrupt data as absent.
// Returns false when the blob was missing or unusable.
func (s *Store) decode(key string, blob []byte, out any) bool {
	if blob == nil {
		return false
	}
	if err := json.Unmarshal(blob, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).
			Msg("stored blob is corrupt, starting from empty state")
		return false
	}
	return true
}

// LoadHistory returns the persisted transaction history, or an empty
// history when none was saved or the blob is corrupt.
func (s *Store) LoadHistory() ([]model.Transaction, error) {
	blob, err := s.load(historyKey)
	if err != nil {
		return nil, err
	}
	var txns []model.Transaction
	if !s.decode(historyKey, blob, &txns) {
		return nil, nil
	}
	return txns, nil
}

// SaveHistory persists the full transaction history.
func (s *Store) SaveHistory(txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	return s.save(historyKey, txns)
}

// LoadCategories returns the persisted taxonomy, empty when absent or
// corrupt.
func (s *Store) LoadCategories() ([]model.CategoryNode, error) {
	blob, err := s.load(categoriesKey)
	if err != nil {
		return nil, err
	}
	var nodes []model.CategoryNode
	if !s.decode(categoriesKey, blob, &nodes) {
		return nil, nil
	}
	return nodes, nil
}

// SaveCategories persists the full taxonomy.
func (s *Store) SaveCategories(nodes []model.CategoryNode) error {
	if nodes == nil {
		nodes = []model.CategoryNode{}
	}
	return s.save(categoriesKey, nodes)
}

// LoadMemory returns the persisted auto-categorization entries, empty when
// absent or corrupt.
func (s *Store) LoadMemory() (map[string]model.Category, error) {
	blob, err := s.load(memoryKey)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]model.Category)
	if !s.decode(memoryKey, blob, &entries) {
		return make(map[string]model.Category), nil
	}
	return entries, nil
}

// SaveMemory persists the auto-categorization entries.
func (s *Store) SaveMemory(entries map[string]model.Category) error {
	if entries == nil {
		entries = map[string]model.Category{}
	}
	return s.save(memoryKey, entries)
}
