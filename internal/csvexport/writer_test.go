package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billmitra/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 7)
	assert.Equal(t, "Date", row[0])
	assert.Equal(t, "Running Balance", row[6])
}

func TestWriteEntries(t *testing.T) {
	entries := []domain.LedgerEntry{
		{
			Date:           time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Particulars:    "Sales Invoice INV-0001",
			VoucherType:    domain.VoucherSales,
			VoucherNumber:  "INV-0001",
			Debit:          decimal.NewFromInt(1000),
			Credit:         decimal.Zero,
			RunningBalance: decimal.NewFromInt(1000),
		},
		{
			Date:           time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			Particulars:    "Receipt against INV-0001",
			VoucherType:    domain.VoucherReceipt,
			VoucherNumber:  "RCP-0001",
			Debit:          decimal.Zero,
			Credit:         decimal.RequireFromString("400.5"),
			RunningBalance: decimal.RequireFromString("599.5"),
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteEntries(entries))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-07-01", rows[0][0])
	assert.Equal(t, "Sales Invoice INV-0001", rows[0][1])
	assert.Equal(t, "sales", rows[0][2])
	assert.Equal(t, "INV-0001", rows[0][3])
	assert.Equal(t, "1000.00", rows[0][4])
	assert.Equal(t, "", rows[0][5])
	assert.Equal(t, "1000.00", rows[0][6])

	assert.Equal(t, "receipt", rows[1][2])
	assert.Equal(t, "", rows[1][4])
	assert.Equal(t, "400.50", rows[1][5])
	assert.Equal(t, "599.50", rows[1][6])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Sharma Traders", "Sharma_Traders"},
		{"special chars", "M/s Gupta & Sons (Delhi)", "M_s_Gupta_Sons_Delhi"},
		{"unicode", "शर्मा Traders", "Traders"},
		{"hyphens and underscores preserved", "party-ledger_2025", "party-ledger_2025"},
		{"consecutive underscores collapsed", "test___party", "test_party"},
		{"leading/trailing cleaned", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	filename := BuildFilename("Sharma Traders")
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "Sharma_Traders_ledger_"+today+".csv", filename)
}
