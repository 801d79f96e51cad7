// File path: internal/pricing/bom.go
package pricing

import (
	"fmt"

	"github.com/evmaxhq/evmax-catalog/internal/catalog"
)

// GenerateBOM builds the bill of materials for a project specification from
// the static catalog.
func GenerateBOM(spec ProjectSpecification) ([]BOMLineItem, error) {
	if spec.NumPorts <= 0 {
		return nil, fmt.Errorf("num_ports must be positive")
	}
	switch spec.ChargingType {
	case ChargingL2:
		return generateL2BOM(spec)
	case ChargingDCFast:
		return generateDCFastBOM(spec)
	}
	return nil, fmt.Errorf("unsupported charging type %q", spec.ChargingType)
}

type bomBuilder struct {
	items []BOMLineItem
	err   error
}

func (b *bomBuilder) add(code string, quantity float64) {
	b.addScaled(code, quantity, 1)
}

// addScaled appends a line with the catalog unit cost multiplied by factor;
// used for site conditions that inflate a rate (deeper DC trenching).
func (b *bomBuilder) addScaled(code string, quantity, factor float64) {
	if b.err != nil {
		return
	}
	entry, ok := catalog.ByCode(code)
	if !ok {
		b.err = fmt.Errorf("cost code %s missing from catalog", code)
		return
	}
	unitCost := entry.UnitCost * factor
	b.items = append(b.items, BOMLineItem{
		CostCode:    entry.Code,
		Description: entry.Description,
		Quantity:    quantity,
		Unit:        entry.Unit,
		UnitCost:    unitCost,
		Subtotal:    unitCost * quantity,
	})
}

func generateL2BOM(spec ProjectSpecification) ([]BOMLineItem, error) {
	ports := float64(spec.NumPorts)
	conduitLength := spec.ExcavationLength
	if conduitLength <= 0 {
		conduitLength = 50 * ports
	}
	panelCount := float64(max(1, (spec.NumPorts+3)/4))

	b := &bomBuilder{}
	b.add("EQUIP-001", ports)               // L2 charging stations
	b.add("EQUIP-006", panelCount)          // one panel per 4 ports
	b.add("CONC-001", 20*ports)             // 20 SF pad per port
	b.add("COND-002", conduitLength)
	b.add("WIRE-001", conduitLength*3)      // 3 conductors
	b.add("SITE-001", conduitLength)
	b.add("GRND-001", ports)
	b.add("SAFE-001", ports*2)
	b.add("LABOR-001", 16*ports)
	b.add("REST-001", conduitLength*3)
	return b.items, b.err
}

func generateDCFastBOM(spec ProjectSpecification) ([]BOMLineItem, error) {
	ports := float64(spec.NumPorts)
	conduitLength := spec.ExcavationLength
	if conduitLength <= 0 {
		conduitLength = 75 * ports
	}
	transformerCount := float64(max(1, (spec.NumPorts+1)/2))

	b := &bomBuilder{}
	b.add("EQUIP-003", ports)                 // DC fast chargers
	b.add("EQUIP-008", transformerCount)      // one transformer per 2 ports
	b.add("CONC-008", 40*ports)               // reinforced pad
	b.add("COND-007", conduitLength)
	b.add("WIRE-010", conduitLength*3)
	b.addScaled("SITE-001", conduitLength, 1.5) // deeper trenches
	b.add("GRND-002", ports*2)
	b.add("SAFE-001", ports*3)
	b.add("LABOR-002", 40*ports)
	b.add("REST-002", conduitLength*4)
	return b.items, b.err
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
