// Package category maintains the two-level category taxonomy and keeps the
// transaction history and the auto-categorization memory consistent with
// it. Transactions reference categories by name, so every deletion here
// cascades by name into both collaborators. Nothing in this package
// persists; callers save the taxonomy, history, and memory explicitly.
package category

import (
	"errors"
	"fmt"

	"github.com/shavitns/expense-manager/internal/history"
	"github.com/shavitns/expense-manager/internal/memory"
	"github.com/shavitns/expense-manager/internal/model"
)

// ErrDuplicateCategory means a main category with that name already exists.
var ErrDuplicateCategory = errors.New("category already exists")

// ErrCategoryNotFound means no main category has that name.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateSubcategory means the subcategory already exists under the
// main category.
var ErrDuplicateSubcategory = errors.New("subcategory already exists")

// ErrSubcategoryNotFound means the subcategory does not exist under the
// main category.
var ErrSubcategoryNotFound = errors.New("subcategory not found")

// Service provides business logic for the category taxonomy.
type Service struct {
	nodes   []model.CategoryNode
	history *history.Service
	memory  *memory.Memory
}

// NewService creates a Service over an existing taxonomy, wired to the
// history and memory it must cascade into.
func NewService(nodes []model.CategoryNode, hist *history.Service, mem *memory.Memory) *Service {
	return &Service{nodes: nodes, history: hist, memory: mem}
}

// All returns the taxonomy in order.
func (s *Service) All() []model.CategoryNode {
	return s.nodes
}

func (s *Service) find(main string) int {
	for i, n := range s.nodes {
		if n.Name == main {
			return i
		}
	}
	return -1
}

// AddMain creates a new main category. Names are matched case-sensitively.
func (s *Service) AddMain(name string) (model.CategoryNode, error) {
	if s.find(name) != -1 {
		return model.CategoryNode{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	node := model.CategoryNode{Name: name, Subcategories: []string{}}
	s.nodes = append(s.nodes, node)
	return node, nil
}

// AddSub appends a subcategory under an existing main category.
func (s *Service) AddSub(main, sub string) (model.CategoryNode, error) {
	i := s.find(main)
	if i == -1 {
		return model.CategoryNode{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, main)
	}
	if s.nodes[i].HasSub(sub) {
		return model.CategoryNode{}, fmt.Errorf("%w: %q under %q", ErrDuplicateSubcategory, sub, main)
	}
	s.nodes[i].Subcategories = append(s.nodes[i].Subcategories, sub)
	return s.nodes[i], nil
}

// DeleteMain removes a main category and cascades: every transaction
// carrying it becomes uncategorized, and every memory entry remembering it
// is purged.
func (s *Service) DeleteMain(main string) error {
	i := s.find(main)
	if i == -1 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, main)
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)

	s.history.ClearMain(main)
	s.memory.DropMain(main)
	return nil
}

// DeleteSub removes a subcategory and cascades: matching transactions and
// memory entries keep the main category but lose the sub.
func (s *Service) DeleteSub(main, sub string) error {
	i := s.find(main)
	if i == -1 {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, main)
	}
	node := &s.nodes[i]

	at := -1
	for j, existing := range node.Subcategories {
		if existing == sub {
			at = j
			break
		}
	}
	if at == -1 {
		return fmt.Errorf("%w: %q under %q", ErrSubcategoryNotFound, sub, main)
	}
	node.Subcategories = append(node.Subcategories[:at], node.Subcategories[at+1:]...)

	s.history.ClearSub(main, sub)
	s.memory.ClearSub(main, sub)
	return nil
}

// UpdateTransactionCategory assigns a category to a transaction and records
// the description-to-category mapping in the auto-categorization memory,
// keyed off the record that was actually just modified. Last write wins.
func (s *Service) UpdateTransactionCategory(id string, cat model.Category) (model.Transaction, error) {
	updated, err := s.history.SetCategory(id, cat)
	if err != nil {
		return model.Transaction{}, err
	}
	s.memory.Remember(updated.Description, *updated.Category)
	return updated, nil
}
