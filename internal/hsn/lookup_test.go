package hsn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billmitra/internal/hsn"
	"billmitra/internal/port"
)

func newLookup() *hsn.Lookup {
	return hsn.NewLookup([]port.HSNEntry{
		{Code: "6403", Description: "Footwear with leather uppers", GSTRate: 18},
		{Code: "6403", Description: "Footwear below ₹1000/pair", GSTRate: 12, ConditionDesc: "sale value <= 1000"},
		{Code: "090111", Description: "Coffee, not roasted", GSTRate: 5},
	})
}

func TestExists(t *testing.T) {
	l := newLookup()
	assert.True(t, l.Exists("6403"))
	assert.True(t, l.Exists("090111"))
	assert.False(t, l.Exists("9999"))
	assert.False(t, l.Exists(""))
}

func TestExists_PrefixFallback(t *testing.T) {
	l := newLookup()
	// 8-digit code resolves through its 4-digit chapter heading.
	assert.True(t, l.Exists("64031200"))
	// 6-digit code resolves through the 4-digit prefix too.
	assert.True(t, l.Exists("640312"))
	assert.False(t, l.Exists("64041200"))
}

func TestRateMatches(t *testing.T) {
	l := newLookup()

	matched, rates := l.RateMatches("6403", 18)
	assert.True(t, matched)
	assert.Len(t, rates, 2)

	matched, _ = l.RateMatches("6403", 12)
	assert.True(t, matched)

	matched, rates = l.RateMatches("6403", 5)
	assert.False(t, matched)
	assert.Len(t, rates, 2)

	matched, rates = l.RateMatches("8517", 18)
	assert.False(t, matched)
	assert.Nil(t, rates)
}

func TestEmptyLookup(t *testing.T) {
	l := hsn.NewLookup(nil)
	assert.False(t, l.Exists("6403"))
}
