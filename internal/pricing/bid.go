// File path: internal/pricing/bid.go
package pricing

import (
	"github.com/evmaxhq/evmax-catalog/internal/catalog"
	"github.com/evmaxhq/evmax-catalog/internal/common/telemetry"
	"github.com/evmaxhq/evmax-catalog/internal/config"
)

// Calculator applies the configured markup chain to project specifications.
type Calculator struct {
	settings config.Settings
}

// NewCalculator builds a Calculator with the provided business rates.
func NewCalculator(settings config.Settings) *Calculator {
	return &Calculator{settings: settings}
}

// CalculateBid generates the BOM for a specification and applies the full
// markup chain: material markup, overhead, excavation contingency, then
// profit on top of everything.
func (c *Calculator) CalculateBid(spec ProjectSpecification) (BidCalculation, error) {
	items, err := GenerateBOM(spec)
	if err != nil {
		return BidCalculation{}, err
	}

	materialCost := 0.0
	laborCost := 0.0
	for _, item := range items {
		entry, ok := catalog.ByCode(item.CostCode)
		if !ok {
			// Split half-half when the code cannot be resolved.
			materialCost += item.Subtotal * 0.5
			laborCost += item.Subtotal * 0.5
			continue
		}
		materialCost += entry.MaterialCost * item.Quantity
		laborCost += entry.LaborCost * item.Quantity
	}

	subtotal := materialCost + laborCost
	markupAmount := materialCost * c.settings.MaterialMarkup
	overheadAmount := subtotal * c.settings.OverheadRate
	contingencyAmount := subtotal * c.settings.ExcavationContingency

	costBeforeProfit := subtotal + markupAmount + overheadAmount + contingencyAmount
	profitAmount := costBeforeProfit * c.settings.ProfitMargin
	totalCost := costBeforeProfit + profitAmount

	telemetry.RecordBid()
	return BidCalculation{
		ProjectName:  spec.ProjectName,
		ChargingType: spec.ChargingType,
		NumPorts:     spec.NumPorts,

		MaterialCost: round2(materialCost),
		LaborCost:    round2(laborCost),
		Subtotal:     round2(subtotal),

		MaterialMarkup:              c.settings.MaterialMarkup,
		MaterialMarkupAmount:        round2(markupAmount),
		OverheadRate:                c.settings.OverheadRate,
		OverheadAmount:              round2(overheadAmount),
		ExcavationContingency:       c.settings.ExcavationContingency,
		ExcavationContingencyAmount: round2(contingencyAmount),
		ProfitMargin:                c.settings.ProfitMargin,
		ProfitAmount:                round2(profitAmount),

		TotalCost:   round2(totalCost),
		CostPerPort: round2(totalCost / float64(spec.NumPorts)),
	}, nil
}

// LineItemInput references a catalog code and quantity for ad-hoc bid totals.
type LineItemInput struct {
	CostCode string  `json:"cost_code"`
	Quantity float64 `json:"quantity"`
}

// CalculatedLineItem is a priced line in an ad-hoc bid calculation.
type CalculatedLineItem struct {
	CostCode    string  `json:"cost_code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// BidTotals aggregates ad-hoc line items with tax.
type BidTotals struct {
	LineItems   []CalculatedLineItem `json:"line_items"`
	Subtotal    float64              `json:"subtotal"`
	TaxRate     float64              `json:"tax_rate"`
	TaxAmount   float64              `json:"tax_amount"`
	TotalAmount float64              `json:"total_amount"`
}

// CalculateBidFromCostCodes prices a list of catalog references. Unknown
// codes are skipped, matching the permissive behavior of the bid endpoints.
func CalculateBidFromCostCodes(items []LineItemInput, taxRate float64) BidTotals {
	calculated := make([]CalculatedLineItem, 0, len(items))
	subtotal := 0.0
	for _, item := range items {
		entry, ok := catalog.ByCode(item.CostCode)
		if !ok {
			continue
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lineTotal := entry.TotalCost(quantity)
		subtotal += lineTotal
		calculated = append(calculated, CalculatedLineItem{
			CostCode:    entry.Code,
			Description: entry.Description,
			Quantity:    quantity,
			Unit:        entry.Unit,
			UnitPrice:   entry.UnitCost,
			Total:       round2(lineTotal),
		})
	}
	taxAmount := subtotal * (taxRate / 100)
	return BidTotals{
		LineItems:   calculated,
		Subtotal:    round2(subtotal),
		TaxRate:     taxRate,
		TaxAmount:   round2(taxAmount),
		TotalAmount: round2(subtotal + taxAmount),
	}
}
