// Package memory implements the description-to-category associative cache
// behind category suggestions. The cache is last-write-wins and only ever
// answers on an exact normalized-description match; it never guesses.
package memory

import (
	"strings"

	"github.com/shavitns/expense-manager/internal/model"
)

// Memory maps normalized descriptions to the category last assigned to a
// transaction with that exact description.
type Memory struct {
	entries map[string]model.Category
}

// New creates a Memory from stored entries. A nil map yields an empty cache.
func New(entries map[string]model.Category) *Memory {
	if entries == nil {
		entries = make(map[string]model.Category)
	}
	return &Memory{entries: entries}
}

// Normalize produces the lookup key for a description: lower-cased, trimmed.
func Normalize(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Suggest returns the remembered category for description, if any.
func (m *Memory) Suggest(description string) (model.Category, bool) {
	cat, ok := m.entries[Normalize(description)]
	return cat, ok
}

// Remember records the category last assigned to description, replacing any
// prior mapping.
func (m *Memory) Remember(description string, cat model.Category) {
	m.entries[Normalize(description)] = cat
}

// DropMain removes every entry whose remembered main category is main.
// Called when a main category is deleted from the taxonomy.
func (m *Memory) DropMain(main string) {
	for key, cat := range m.entries {
		if cat.Main == main {
			delete(m.entries, key)
		}
	}
}

// ClearSub resets the subcategory on every entry matching main and sub,
// keeping the main category. Called when a subcategory is deleted.
func (m *Memory) ClearSub(main, sub string) {
	for key, cat := range m.entries {
		if cat.Main == main && cat.Sub == sub {
			cat.Sub = ""
			m.entries[key] = cat
		}
	}
}

// Entries exposes the underlying map for persistence.
func (m *Memory) Entries() map[string]model.Category {
	return m.entries
}

// Len returns the number of remembered descriptions.
func (m *Memory) Len() int { return len(m.entries) }
