// Package hsn provides in-memory lookups over the HSN/SAC master list.
package hsn

import (
	"math"

	"billmitra/internal/port"
)

// RateEntry holds a valid GST rate and optional condition for an HSN code.
type RateEntry struct {
	Rate          float64
	Description   string
	ConditionDesc string
}

// Lookup provides fast lookups for HSN code existence and rate validation.
// It is immutable after construction and safe for concurrent access.
type Lookup struct {
	byCode map[string][]RateEntry
}

// NewLookup builds a Lookup from master entries loaded from the database.
func NewLookup(entries []port.HSNEntry) *Lookup {
	m := make(map[string][]RateEntry, len(entries))
	for idx := range entries {
		e := &entries[idx]
		m[e.Code] = append(m[e.Code], RateEntry{
			Rate:          e.GSTRate,
			Description:   e.Description,
			ConditionDesc: e.ConditionDesc,
		})
	}
	return &Lookup{byCode: m}
}

// Exists reports whether the code (or a shorter prefix of it) is in the
// master list. Exact match first, then 6- and 4-digit prefixes.
func (l *Lookup) Exists(code string) bool {
	return len(l.Rates(code)) > 0
}

// Rates returns valid rate entries for the code, with prefix fallback.
func (l *Lookup) Rates(code string) []RateEntry {
	if len(l.byCode) == 0 || code == "" {
		return nil
	}
	if rates, ok := l.byCode[code]; ok {
		return rates
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if rates, ok := l.byCode[code[:prefixLen]]; ok {
				return rates
			}
		}
	}
	return nil
}

// RateMatches reports whether gstRate matches any valid rate for the code
// and returns the list of valid rates for diagnostics.
func (l *Lookup) RateMatches(code string, gstRate float64) (bool, []RateEntry) {
	validRates := l.Rates(code)
	if len(validRates) == 0 {
		return false, nil
	}
	for idx := range validRates {
		if math.Abs(validRates[idx].Rate-gstRate) < 0.01 {
			return true, validRates
		}
	}
	return false, validRates
}
