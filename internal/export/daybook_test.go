package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"billmitra/internal/domain"
)

func TestDayBookXLSX(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		{
			Date:          time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Particulars:   "Sales Invoice INV-0001",
			VoucherType:   domain.VoucherSales,
			VoucherNumber: "INV-0001",
			Debit:         decimal.NewFromInt(1000),
		},
		{
			Date:          time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			Particulars:   "Receipt against INV-0001",
			VoucherType:   domain.VoucherReceipt,
			VoucherNumber: "RCP-0001",
			Credit:        decimal.NewFromInt(400),
		},
	}

	data, err := DayBookXLSX(entries, from, to)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue(daybookSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Day Book 01-07-2025 to 31-07-2025", title)

	header, err := f.GetCellValue(daybookSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	first, err := f.GetCellValue(daybookSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Sales Invoice INV-0001", first)

	debit, err := f.GetCellValue(daybookSheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "1000", debit)

	// Credit cell empty on a debit row
	credit, err := f.GetCellValue(daybookSheet, "F3")
	require.NoError(t, err)
	assert.Empty(t, credit)

	totalLabel, err := f.GetCellValue(daybookSheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total", totalLabel)

	totalCredit, err := f.GetCellValue(daybookSheet, "F5")
	require.NoError(t, err)
	assert.Equal(t, "400", totalCredit)
}

func TestDayBookXLSX_Empty(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

	data, err := DayBookXLSX(nil, from, to)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	totalLabel, err := f.GetCellValue(daybookSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total", totalLabel)
}

func TestBuildDayBookFilename(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "daybook_2025-07-01_2025-07-31.xlsx", BuildDayBookFilename(from, to))
}
