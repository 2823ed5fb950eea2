package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shavitns/expense-manager/internal/tabular"
)

func leumiTable() tabular.Table {
	return tabular.Table{
		{"עובר ושב - תנועות בחשבון"},
		{"תאריך", "תאריך ערך", "תיאור", "אסמכתא", "חובה", "זכות"},
		{"03/01/2025", "03/01/2025", "סופרמרקט יוחננוף", "100001", "1,200.50", ""},
		{"05/01/2025", "05/01/2025", "משכורת ינואר", "100002", "", "15,000.00"},
		{"", "06/01/2025", "עמלת ערוץ ישיר", "100003", "12.90", ""},
		{"", "", "", "", "", ""},
	}
}

func TestLeumiParser_Parse(t *testing.T) {
	p := &LeumiParser{}
	txns, err := p.Parse([]tabular.Table{leumiTable()})
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// Debit column yields a negative amount.
	assert.Equal(t, "2025-01-03", txns[0].Date)
	assert.Equal(t, "סופרמרקט יוחננוף", txns[0].Description)
	assert.Equal(t, "-1200.50", txns[0].Amount.StringFixed(2))

	// Credit column yields a positive amount, thousands separator stripped.
	assert.Equal(t, "2025-01-05", txns[1].Date)
	assert.Equal(t, "15000.00", txns[1].Amount.StringFixed(2))

	// Missing date falls back to the value-date column.
	assert.Equal(t, "2025-01-06", txns[2].Date)
	assert.Equal(t, "-12.90", txns[2].Amount.StringFixed(2))

	// Parsers never assign identifiers or categories.
	for _, tx := range txns {
		assert.Empty(t, tx.ID)
		assert.Nil(t, tx.Category)
	}
}

func TestLeumiParser_BestEffortRows(t *testing.T) {
	table := tabular.Table{
		{"תאריך", "תיאור", "חובה", "זכות"},
		{"לא תאריך", "תנועה מוזרה", "abc", ""},
	}

	p := &LeumiParser{}
	txns, err := p.Parse([]tabular.Table{table})
	require.NoError(t, err)
	require.Len(t, txns, 1)

	// Malformed cells do not abort the batch: the date stays verbatim and
	// the unparsable amount counts as zero.
	assert.Equal(t, "לא תאריך", txns[0].Date)
	assert.True(t, txns[0].Amount.IsZero())
}

func TestLeumiParser_EmptyStatement(t *testing.T) {
	p := &LeumiParser{}

	_, err := p.Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyStatement)

	_, err = p.Parse([]tabular.Table{{}})
	assert.ErrorIs(t, err, ErrEmptyStatement)
}

func TestLeumiParser_HeaderNotFound(t *testing.T) {
	table := tabular.Table{
		{"03/01/2025", "no header anywhere", "120.00"},
	}

	p := &LeumiParser{}
	_, err := p.Parse([]tabular.Table{table})
	assert.ErrorIs(t, err, tabular.ErrHeaderNotFound)
}

func TestRegistry_Resolve(t *testing.T) {
	r := DefaultRegistry()

	p, err := r.Resolve("leumi")
	require.NoError(t, err)
	assert.Equal(t, "leumi", p.Source())

	// Lookup is case-insensitive.
	p, err = r.Resolve("Leumi")
	require.NoError(t, err)
	assert.Equal(t, "leumi", p.Source())
}

func TestRegistry_UnknownSource(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Resolve("hapoalim")
	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&LeumiParser{})
	assert.Panics(t, func() { r.Register(&LeumiParser{}) })
}
