// File path: internal/pricing/quote.go

// Package pricing implements the quote/bid adjustment chain, BOM generation,
// and ROI projections over the static cost-code catalog.
package pricing

import (
	"math"
	"sort"
	"strings"

	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
)

// VolumeDiscount returns the discount percentage for a quantity. Product
// pricing tiers take precedence; otherwise the default 5-20% bands apply.
func VolumeDiscount(quantity int, tiers []PricingTier) float64 {
	if len(tiers) > 0 {
		sorted := append([]PricingTier(nil), tiers...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinQuantity > sorted[j].MinQuantity })
		for _, tier := range sorted {
			if quantity >= tier.MinQuantity {
				return tier.DiscountPercent
			}
		}
		return 0
	}
	switch {
	case quantity >= 1000:
		return 20
	case quantity >= 500:
		return 15
	case quantity >= 250:
		return 12
	case quantity >= 100:
		return 10
	case quantity >= 50:
		return 7
	case quantity >= 10:
		return 5
	}
	return 0
}

// SeasonalAdjustment returns the price adjustment percentage for a season;
// positive values raise the price.
func SeasonalAdjustment(season string) float64 {
	switch strings.ToLower(strings.TrimSpace(season)) {
	case "winter":
		return 10
	case "spring":
		return 5
	case "summer":
		return -5
	case "fall":
		return 0
	}
	return 0
}

// TierAdjustment returns the customer-tier discount percentage.
func TierAdjustment(tier string) float64 {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "premium":
		return 5
	case "enterprise":
		return 10
	}
	return 0
}

// ComputeQuote applies the volume, seasonal, and tier adjustments in order and
// derives the resulting margin.
func ComputeQuote(in QuoteInput) Quote {
	volume := VolumeDiscount(in.Quantity, in.PricingTiers)
	seasonal := SeasonalAdjustment(in.Season)
	tier := TierAdjustment(in.Tier)

	unitPrice := in.BasePrice
	unitPrice *= 1 - volume/100
	unitPrice *= 1 + seasonal/100
	unitPrice *= 1 - tier/100

	quantity := float64(in.Quantity)
	subtotal := in.BasePrice * quantity
	totalPrice := unitPrice * quantity
	totalCost := in.BaseCost * quantity
	marginAmount := totalPrice - totalCost
	marginPercent := 0.0
	if totalPrice > 0 {
		marginPercent = marginAmount / totalPrice * 100
	}

	telemetry.RecordQuote()
	return Quote{
		Quantity:                  in.Quantity,
		BasePrice:                 in.BasePrice,
		UnitPrice:                 round2(unitPrice),
		VolumeDiscountPercent:     round2(volume),
		SeasonalAdjustmentPercent: round2(seasonal),
		TierAdjustmentPercent:     round2(tier),
		Subtotal:                  round2(subtotal),
		TotalPrice:                round2(totalPrice),
		MarginPercent:             round2(marginPercent),
		MarginAmount:              round2(marginAmount),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
