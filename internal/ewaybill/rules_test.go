package ewaybill_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"billmitra/internal/domain"
	"billmitra/internal/ewaybill"
)

func TestIsRequired(t *testing.T) {
	assert.False(t, ewaybill.IsRequired(decimal.NewFromInt(49999)))
	assert.True(t, ewaybill.IsRequired(decimal.NewFromInt(50000)))
	assert.True(t, ewaybill.IsRequired(decimal.NewFromInt(50001)))
	assert.False(t, ewaybill.IsRequired(decimal.RequireFromString("49999.99")))
}

func TestIsHSNCode(t *testing.T) {
	valid := []string{"6403", "640312", "64031200"}
	for _, code := range valid {
		assert.True(t, ewaybill.IsHSNCode(code), "code %q", code)
	}

	invalid := []string{"", "64", "64031", "6403120", "640312001", "99831A", "ABCD", "99.83"}
	for _, code := range invalid {
		assert.False(t, ewaybill.IsHSNCode(code), "code %q", code)
	}

	// SAC service codes (chapter 99) are not goods codes.
	assert.False(t, ewaybill.IsHSNCode("998311"))
	assert.False(t, ewaybill.IsHSNCode("9983"))
}

func TestHasEligibleGoodsLine(t *testing.T) {
	t.Run("goods_line_present", func(t *testing.T) {
		items := []domain.LineItem{
			{Description: "consulting", HSNSACCode: "998311"},
			{Description: "leather shoes", HSNSACCode: "640312"},
		}
		assert.True(t, ewaybill.HasEligibleGoodsLine(items))
	})

	t.Run("services_only", func(t *testing.T) {
		items := []domain.LineItem{
			{Description: "labour"},
			{Description: "consulting", HSNSACCode: "998311"},
			{Description: "misc", HSNSACCode: "n/a"},
		}
		assert.False(t, ewaybill.HasEligibleGoodsLine(items))
	})

	t.Run("empty", func(t *testing.T) {
		assert.False(t, ewaybill.HasEligibleGoodsLine(nil))
	})
}

func TestValidityDays(t *testing.T) {
	cases := []struct {
		km   int
		want int
	}{
		{0, 1},
		{1, 1},
		{100, 1},
		{101, 2},
		{200, 2},
		{201, 3},
		{250, 3},
		{1000, 10},
		{1001, 11},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ewaybill.ValidityDays(tc.km), "distance %dkm", tc.km)
	}
}
