// File path: internal/catalog/types.go
package catalog

// Category classifies a cost code.
type Category string

const (
	CategoryConcrete    Category = "Concrete"
	CategoryConduit     Category = "Conduit"
	CategoryWire        Category = "Wire"
	CategoryLabor       Category = "Labor"
	CategoryEquipment   Category = "Equipment"
	CategorySafety      Category = "Safety"
	CategorySite        Category = "Site"
	CategoryRestoration Category = "Restoration"
	CategoryGrounding   Category = "Grounding"
)

// Categories lists every known category in catalog order.
func Categories() []Category {
	return []Category{
		CategoryConcrete,
		CategoryConduit,
		CategoryWire,
		CategoryLabor,
		CategoryEquipment,
		CategorySafety,
		CategorySite,
		CategoryRestoration,
		CategoryGrounding,
	}
}

// CostCode is a single entry in the static installation cost catalog. UnitCost
// is the combined rate; MaterialCost and LaborCost split it for markup math.
type CostCode struct {
	Code         string   `json:"code" db:"code"`
	Category     Category `json:"category" db:"category"`
	Description  string   `json:"description" db:"description"`
	Unit         string   `json:"unit" db:"unit"`
	UnitCost     float64  `json:"unit_cost" db:"unit_cost"`
	MaterialCost float64  `json:"material_cost" db:"material_cost"`
	LaborCost    float64  `json:"labor_cost" db:"labor_cost"`
}

// TotalCost returns the extended cost for a quantity of this code.
func (c CostCode) TotalCost(quantity float64) float64 {
	return c.UnitCost * quantity
}
