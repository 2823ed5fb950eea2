// Package parser maps normalized statement tables to canonical
// transactions. Each bank source gets one Parser variant that knows the
// source's column labels and sign convention; the Registry resolves a
// source identifier to its variant and fails closed on unknown sources.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/tabular"
)

// ErrEmptyStatement means the statement file contained no rows at all.
var ErrEmptyStatement = errors.New("statement is empty")

// ErrUnsupportedSource means no parser is registered for the source.
var ErrUnsupportedSource = errors.New("unsupported statement source")

// Parser converts normalized tables into unsaved transactions (no IDs yet;
// the reconciliation engine assigns identifiers at merge time).
type Parser interface {
	Parse(tables []tabular.Table) ([]model.Transaction, error)
	Source() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate source.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Source())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser source: " + key)
	}
	r.parsers[key] = p
}

// Resolve returns the parser for source. Unknown sources are an error,
// never a silent fallback to some default parser.
func (r *Registry) Resolve(source string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(source)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, source)
	}
	return p, nil
}

// Sources returns the registered source identifiers.
func (r *Registry) Sources() []string {
	var out []string
	for k := range r.parsers {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&LeumiParser{})
	return r
}
