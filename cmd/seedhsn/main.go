// Command seedhsn converts the GST HSN/SAC rate workbook into a SQL seed
// file for the hsn_codes table. It reads the goods sheet named in config
// plus the SAC_Master services sheet when present.
// Usage: go run ./cmd/seedhsn
// Output: db/seeds/hsn_codes.sql
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"billmitra/internal/config"
)

const batchSize = 500

type hsnEntry struct {
	code        string
	description string
	gstRate     float64
	condition   string // empty = NULL
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	outPath := "db/seeds/hsn_codes.sql"

	f, err := excelize.OpenFile(cfg.HSN.SeedFile)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", cfg.HSN.SeedFile, err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]bool)
	var entries []hsnEntry

	goodsEntries, err := parseGoodsSheet(f, cfg.HSN.SheetName, seen)
	if err != nil {
		return fmt.Errorf("parse goods sheet: %w", err)
	}
	entries = append(entries, goodsEntries...)
	log.Printf("goods sheet: %d entries", len(goodsEntries))

	if sacEntries, err := parseSACSheet(f, seen); err == nil {
		entries = append(entries, sacEntries...)
		log.Printf("SAC sheet: %d entries", len(sacEntries))
	} else {
		log.Printf("SAC sheet skipped: %v", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	header := fmt.Sprintf("-- HSN/SAC seed data generated from %s.\n-- %d entries in batches of %d.\nBEGIN;\n",
		cfg.HSN.SeedFile, len(entries), batchSize)
	if _, err := fmt.Fprintln(out, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	if _, err := fmt.Fprintln(out, "\nCOMMIT;"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	log.Printf("generated %d entries in %s", len(entries), outPath)
	return nil
}

// parseGoodsSheet reads the HSN goods sheet. Columns: F(5)=4-digit code,
// H(7)=4-digit desc, I(8)=6-digit code, J(9)=6-digit desc, K(10)=8-digit
// code, M(12)=8-digit desc, N(13)=GST rate. Data starts at row index 5.
func parseGoodsSheet(f *excelize.File, sheetName string, seen map[string]bool) ([]hsnEntry, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var entries []hsnEntry
	for i := 5; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 14 {
			continue
		}

		rateStr := strings.TrimSpace(cellVal(row, 13))
		if rateStr == "" {
			continue
		}

		rateStr = strings.TrimSuffix(rateStr, "%")
		var rate float64
		if _, serr := fmt.Sscanf(rateStr, "%f", &rate); serr != nil {
			continue
		}

		if code := strings.TrimSpace(cellVal(row, 10)); code != "" && isNumeric(code) {
			entries = addEntry(entries, seen, code, strings.TrimSpace(cellVal(row, 12)), rate, "")
		}
		if code := strings.TrimSpace(cellVal(row, 8)); code != "" && isNumeric(code) {
			entries = addEntry(entries, seen, code, strings.TrimSpace(cellVal(row, 9)), rate, "")
		}
		if code := strings.TrimSpace(cellVal(row, 5)); code != "" && isNumeric(code) {
			entries = addEntry(entries, seen, code, strings.TrimSpace(cellVal(row, 7)), rate, "")
		}
	}
	return entries, nil
}

// parseSACSheet reads the SAC_Master services sheet. Columns: A(0)=4-digit
// SAC, B(1)=desc, C(2)=6-digit SAC, D(3)=desc, E(4)=GST rate free text like
// "18%", "Exempt", "5% (without ITC)". Data starts at row index 3.
func parseSACSheet(f *excelize.File, seen map[string]bool) ([]hsnEntry, error) {
	rows, err := f.GetRows("SAC_Master")
	if err != nil {
		return nil, err
	}

	var entries []hsnEntry
	for i := 3; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}

		rateStr := strings.TrimSpace(cellVal(row, 4))
		rates := parseSACRate(rateStr)
		if len(rates) == 0 {
			continue
		}

		// Anything beyond the bare percentage is a rate condition.
		condition := ""
		if len(rates) > 1 || strings.Contains(rateStr, "(") {
			condition = rateStr
		}

		code6 := strings.TrimSpace(cellVal(row, 2))
		desc6 := strings.TrimSpace(cellVal(row, 3))
		code4 := strings.TrimSpace(cellVal(row, 0))
		desc4 := strings.TrimSpace(cellVal(row, 1))

		for _, rate := range rates {
			if code6 != "" && isNumeric(code6) {
				entries = addEntry(entries, seen, code6, desc6, rate, condition)
			}
			if code4 != "" && isNumeric(code4) {
				entries = addEntry(entries, seen, code4, desc4, rate, condition)
			}
		}
	}
	return entries, nil
}

// ratePattern matches a number followed by "%".
var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// parseSACRate extracts GST rate(s) from free-text SAC rate strings.
func parseSACRate(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	if lower == "exempt" || lower == "nil" {
		return []float64{0}
	}

	matches := ratePattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seenRates := make(map[float64]bool)
	var rates []float64
	for _, m := range matches {
		var rate float64
		if _, err := fmt.Sscanf(m[1], "%f", &rate); err == nil && !seenRates[rate] {
			seenRates[rate] = true
			rates = append(rates, rate)
		}
	}
	return rates
}

func addEntry(entries []hsnEntry, seen map[string]bool, code, description string, gstRate float64, condition string) []hsnEntry {
	key := fmt.Sprintf("%s|%.2f", code, gstRate)
	if seen[key] {
		return entries
	}
	seen[key] = true
	return append(entries, hsnEntry{code: code, description: description, gstRate: gstRate, condition: condition})
}

func writeBatch(out *os.File, batch []hsnEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO hsn_codes (code, description, gst_rate, condition_desc) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}

		condVal := "''"
		if e.condition != "" {
			condVal = fmt.Sprintf("'%s'", escapeSQL(e.condition))
		}

		fmt.Fprintf(&b, "  ('%s', '%s', %.2f, %s)",
			escapeSQL(e.code), escapeSQL(e.description), e.gstRate, condVal)
	}
	b.WriteString("\nON CONFLICT (code, gst_rate) DO NOTHING;\n")

	_, err := fmt.Fprint(out, b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
