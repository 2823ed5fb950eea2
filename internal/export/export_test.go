package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shavitns/expense-manager/internal/model"
)

func sampleTxns() []model.Transaction {
	return []model.Transaction{
		{ID: "t1", Date: "2024-03-05", Amount: decimal.RequireFromString("-50.25"),
			Description: "Cafe \"Aroma\"\nTel Aviv",
			Category:    &model.Category{Main: "Food", Sub: "Eating Out"}},
		{ID: "t2", Date: "2024-03-06", Amount: decimal.RequireFromString("1200"),
			Description: "Salary"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTxns()))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])

	// Every field quoted, quotes doubled, newline collapsed to a space.
	assert.Equal(t, `"t1","2024-03-05","-50.25","Cafe ""Aroma"" Tel Aviv","Food","Eating Out"`, lines[1])

	// Uncategorized rows export empty category columns.
	assert.Equal(t, `"t2","2024-03-06","1200","Salary","",""`, lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, Header, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTxns()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, strings.Split(Header, ","), rows[0])
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "Cafe \"Aroma\" Tel Aviv", rows[1][3])
	assert.Equal(t, "Eating Out", rows[1][5])
}
