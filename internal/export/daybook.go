// Package export renders ledger aggregation results as downloadable
// workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"billmitra/internal/domain"
)

const daybookSheet = "Day Book"

var daybookColumns = []string{
	"Date",
	"Particulars",
	"Voucher Type",
	"Voucher Number",
	"Debit",
	"Credit",
}

// DayBookXLSX renders day-book entries as an XLSX workbook and returns the
// serialized bytes. A totals row is appended after the entries.
func DayBookXLSX(entries []domain.LedgerEntry, from, to time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(daybookSheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	title := fmt.Sprintf("Day Book %s to %s", from.Format("02-01-2006"), to.Format("02-01-2006"))
	if err := f.SetCellValue(daybookSheet, "A1", title); err != nil {
		return nil, fmt.Errorf("writing title: %w", err)
	}

	for col, name := range daybookColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(daybookSheet, cell, name); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i := range entries {
		e := &entries[i]
		row := i + 3
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			e.Particulars,
			string(e.VoucherType),
			e.VoucherNumber,
			amountCell(e.Debit),
			amountCell(e.Credit),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(daybookSheet, cell, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", row, err)
			}
		}
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	totalsRow := len(entries) + 3
	totals := map[string]interface{}{
		fmt.Sprintf("A%d", totalsRow): "Total",
		fmt.Sprintf("E%d", totalsRow): totalDebit.InexactFloat64(),
		fmt.Sprintf("F%d", totalsRow): totalCredit.InexactFloat64(),
	}
	for cell, v := range totals {
		if err := f.SetCellValue(daybookSheet, cell, v); err != nil {
			return nil, fmt.Errorf("writing totals: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// amountCell renders a zero debit/credit as an empty cell so the workbook
// reads like a hand-kept day book.
func amountCell(v decimal.Decimal) interface{} {
	if v.IsZero() {
		return ""
	}
	return v.InexactFloat64()
}

// BuildDayBookFilename returns the object key / download name for a day-book
// export window.
func BuildDayBookFilename(from, to time.Time) string {
	return fmt.Sprintf("daybook_%s_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02"))
}
