// File path: internal/pricing/quote_test.go
package pricing

import "testing"

func TestVolumeDiscountBands(t *testing.T) {
	cases := []struct {
		quantity int
		want     float64
	}{
		{1, 0},
		{9, 0},
		{10, 5},
		{49, 5},
		{50, 7},
		{100, 10},
		{250, 12},
		{500, 15},
		{999, 15},
		{1000, 20},
		{5000, 20},
	}
	for _, tc := range cases {
		if got := VolumeDiscount(tc.quantity, nil); got != tc.want {
			t.Fatalf("quantity %d: expected %.0f%%, got %.0f%%", tc.quantity, tc.want, got)
		}
	}
}

func TestVolumeDiscountProductTiersTakePrecedence(t *testing.T) {
	tiers := []PricingTier{
		{MinQuantity: 5, DiscountPercent: 3},
		{MinQuantity: 20, DiscountPercent: 8},
	}
	if got := VolumeDiscount(25, tiers); got != 8 {
		t.Fatalf("expected highest matching tier 8%%, got %.0f%%", got)
	}
	if got := VolumeDiscount(6, tiers); got != 3 {
		t.Fatalf("expected tier 3%%, got %.0f%%", got)
	}
	if got := VolumeDiscount(2, tiers); got != 0 {
		t.Fatalf("expected no tier discount, got %.0f%%", got)
	}
}

func TestSeasonalAdjustment(t *testing.T) {
	if got := SeasonalAdjustment("Winter"); got != 10 {
		t.Fatalf("winter: expected +10, got %.0f", got)
	}
	if got := SeasonalAdjustment("spring"); got != 5 {
		t.Fatalf("spring: expected +5, got %.0f", got)
	}
	if got := SeasonalAdjustment("SUMMER"); got != -5 {
		t.Fatalf("summer: expected -5, got %.0f", got)
	}
	if got := SeasonalAdjustment("fall"); got != 0 {
		t.Fatalf("fall: expected 0, got %.0f", got)
	}
	if got := SeasonalAdjustment("monsoon"); got != 0 {
		t.Fatalf("unknown season: expected 0, got %.0f", got)
	}
}

func TestTierAdjustment(t *testing.T) {
	if got := TierAdjustment("premium"); got != 5 {
		t.Fatalf("premium: expected 5, got %.0f", got)
	}
	if got := TierAdjustment("Enterprise"); got != 10 {
		t.Fatalf("enterprise: expected 10, got %.0f", got)
	}
	if got := TierAdjustment("standard"); got != 0 {
		t.Fatalf("standard: expected 0, got %.0f", got)
	}
}

func TestComputeQuoteAppliesAdjustmentChain(t *testing.T) {
	quote := ComputeQuote(QuoteInput{
		Quantity:  100,
		Season:    "winter",
		Tier:      "enterprise",
		BasePrice: 100,
		BaseCost:  60,
	})
	// 100 * 0.90 (volume) * 1.10 (winter) * 0.90 (enterprise) = 89.10
	if quote.UnitPrice != 89.10 {
		t.Fatalf("expected unit price 89.10, got %.2f", quote.UnitPrice)
	}
	if quote.TotalPrice != 8910.00 {
		t.Fatalf("expected total 8910.00, got %.2f", quote.TotalPrice)
	}
	if quote.VolumeDiscountPercent != 10 || quote.SeasonalAdjustmentPercent != 10 || quote.TierAdjustmentPercent != 10 {
		t.Fatalf("unexpected adjustment percentages: %+v", quote)
	}
	if quote.MarginAmount != 2910.00 {
		t.Fatalf("expected margin 2910.00, got %.2f", quote.MarginAmount)
	}
}
