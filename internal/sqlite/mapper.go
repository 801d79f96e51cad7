// File path: internal/sqlite/mapper.go
package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/evmaxhq/evmax-catalog/internal/pricing"
)

// DecodePricingTiers parses the pricing_tiers JSON column.
func DecodePricingTiers(raw string) ([]pricing.PricingTier, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var tiers []pricing.PricingTier
	if err := json.Unmarshal([]byte(raw), &tiers); err != nil {
		return nil, fmt.Errorf("parse pricing tiers: %w", err)
	}
	return tiers, nil
}

// EncodePricingTiers serializes tiers for the pricing_tiers column.
func EncodePricingTiers(tiers []pricing.PricingTier) (string, error) {
	if len(tiers) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(tiers)
	if err != nil {
		return "", fmt.Errorf("encode pricing tiers: %w", err)
	}
	return string(data), nil
}

// DecodeMaterialSpecs parses the material_specs JSON column.
func DecodeMaterialSpecs(raw string) (map[string]interface{}, error) {
	if raw == "" || raw == "{}" {
		return map[string]interface{}{}, nil
	}
	specs := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil, fmt.Errorf("parse material specs: %w", err)
	}
	return specs, nil
}

// EncodeMaterialSpecs serializes specs for the material_specs column.
func EncodeMaterialSpecs(specs map[string]interface{}) (string, error) {
	if len(specs) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return "", fmt.Errorf("encode material specs: %w", err)
	}
	return string(data), nil
}

// DecodeLineItems parses the line_items JSON column of a bid.
func DecodeLineItems(raw string) ([]pricing.CalculatedLineItem, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var items []pricing.CalculatedLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse line items: %w", err)
	}
	return items, nil
}

// EncodeLineItems serializes calculated line items for the line_items column.
func EncodeLineItems(items []pricing.CalculatedLineItem) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode line items: %w", err)
	}
	return string(data), nil
}
