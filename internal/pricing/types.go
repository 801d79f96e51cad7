// File path: internal/pricing/types.go
package pricing

// ChargingType identifies the supported charging infrastructure classes.
type ChargingType string

const (
	ChargingL2     ChargingType = "L2"
	ChargingDCFast ChargingType = "DC_FAST"
)

// ProjectSpecification is the caller-supplied input for BOM and bid
// generation.
type ProjectSpecification struct {
	ProjectName      string       `json:"project_name"`
	ChargingType     ChargingType `json:"charging_type"`
	NumPorts         int          `json:"num_ports"`
	SiteConditions   string       `json:"site_conditions,omitempty"`
	ExcavationLength float64      `json:"excavation_length,omitempty"`
}

// BOMLineItem is one row of a generated bill of materials.
type BOMLineItem struct {
	CostCode    string  `json:"cost_code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
	Subtotal    float64 `json:"subtotal"`
}

// BidCalculation is the full markup breakdown for a project bid.
type BidCalculation struct {
	ProjectName  string       `json:"project_name"`
	ChargingType ChargingType `json:"charging_type"`
	NumPorts     int          `json:"num_ports"`

	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
	Subtotal     float64 `json:"subtotal"`

	MaterialMarkup              float64 `json:"material_markup"`
	MaterialMarkupAmount        float64 `json:"material_markup_amount"`
	OverheadRate                float64 `json:"overhead_rate"`
	OverheadAmount              float64 `json:"overhead_amount"`
	ExcavationContingency       float64 `json:"excavation_contingency"`
	ExcavationContingencyAmount float64 `json:"excavation_contingency_amount"`
	ProfitMargin                float64 `json:"profit_margin"`
	ProfitAmount                float64 `json:"profit_amount"`

	TotalCost   float64 `json:"total_cost"`
	CostPerPort float64 `json:"cost_per_port"`
}

// ROIAnalysis carries payback and multi-year projection figures for a bid.
// PaybackYears is nil when annual net income never recovers the investment;
// the JSON field renders as null in that case.
type ROIAnalysis struct {
	ProjectName         string   `json:"project_name"`
	InitialInvestment   float64  `json:"initial_investment"`
	AnnualRevPerPort    float64  `json:"annual_revenue_per_port"`
	TotalAnnualRevenue  float64  `json:"total_annual_revenue"`
	AnnualOperatingCost float64  `json:"annual_operating_cost"`
	AnnualNetIncome     float64  `json:"annual_net_income"`
	PaybackYears        *float64 `json:"payback_period_years"`
	ROIPercentage       float64  `json:"roi_percentage"`
	ProjectionYears     int      `json:"projection_years"`
	ProjectedNetProfit  float64  `json:"projected_net_profit"`
	ProjectedROIPct     float64  `json:"projected_roi_percentage"`
}

// PricingTier is one volume-discount band attached to a product.
type PricingTier struct {
	MinQuantity     int     `json:"min_quantity"`
	DiscountPercent float64 `json:"discount_percent"`
}

// QuoteInput carries the product figures and requested adjustments for a
// quote computation.
type QuoteInput struct {
	Quantity     int
	Season       string
	Tier         string
	BasePrice    float64
	BaseCost     float64
	PricingTiers []PricingTier
}

// Quote is the adjustment-by-adjustment result of a quote computation.
type Quote struct {
	Quantity                  int     `json:"quantity"`
	BasePrice                 float64 `json:"base_price"`
	UnitPrice                 float64 `json:"unit_price"`
	VolumeDiscountPercent     float64 `json:"volume_discount_percent"`
	SeasonalAdjustmentPercent float64 `json:"seasonal_adjustment_percent"`
	TierAdjustmentPercent     float64 `json:"tier_adjustment_percent"`
	Subtotal                  float64 `json:"subtotal"`
	TotalPrice                float64 `json:"total_price"`
	MarginPercent             float64 `json:"margin_percent"`
	MarginAmount              float64 `json:"margin_amount"`
}

// BenchmarkComparison compares a computed bid against per-port industry
// estimates for the Keystone and GGES providers.
type BenchmarkComparison struct {
	ProjectName  string       `json:"project_name"`
	ChargingType ChargingType `json:"charging_type"`
	NumPorts     int          `json:"num_ports"`

	EvmaxCostPerPort    float64 `json:"evmax_cost_per_port"`
	EvmaxTotalCost      float64 `json:"evmax_total_cost"`
	KeystoneCostPerPort float64 `json:"keystone_cost_per_port"`
	KeystoneTotalCost   float64 `json:"keystone_total_cost"`
	GGESCostPerPort     float64 `json:"gges_cost_per_port"`
	GGESTotalCost       float64 `json:"gges_total_cost"`

	VsKeystoneSavings    float64 `json:"evmax_vs_keystone_savings"`
	VsGGESSavings        float64 `json:"evmax_vs_gges_savings"`
	VsKeystonePercentage float64 `json:"evmax_vs_keystone_percentage"`
	VsGGESPercentage     float64 `json:"evmax_vs_gges_percentage"`
}
