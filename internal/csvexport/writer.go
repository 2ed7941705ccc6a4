package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// ledgerColumns defines the CSV header row for a party ledger export.
var ledgerColumns = []string{
	"Date",
	"Particulars",
	"Voucher Type",
	"Voucher Number",
	"Debit",
	"Credit",
	"Running Balance",
}

// Writer wraps csv.Writer for exporting ledger entries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the ledger header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(ledgerColumns)
}

// WriteEntries converts a batch of ledger entries to CSV rows and writes
// them. Zero debit/credit cells are left empty, matching how accountants
// read a ledger.
func (w *Writer) WriteEntries(entries []domain.LedgerEntry) error {
	for i := range entries {
		row := entryToRow(&entries[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.LedgerEntry) []string {
	row := make([]string, len(ledgerColumns))
	row[0] = e.Date.Format("2006-01-02")
	row[1] = e.Particulars
	row[2] = string(e.VoucherType)
	row[3] = e.VoucherNumber
	row[4] = formatAmount(e.Debit)
	row[5] = formatAmount(e.Credit)
	row[6] = e.RunningBalance.StringFixed(2)
	return row
}

func formatAmount(v decimal.Decimal) string {
	if v.IsZero() {
		return ""
	}
	return v.StringFixed(2)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a party name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_party_name}_ledger_{YYYY-MM-DD}.csv
func BuildFilename(partyName string) string {
	sanitized := SanitizeFilename(partyName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_ledger_%s.csv", sanitized, date)
}
