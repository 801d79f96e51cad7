// File path: internal/api/types.go
package api

import (
	"time"

	"github.com/evmaxhq/evmax-catalog/internal/catalog"
	"github.com/evmaxhq/evmax-catalog/internal/chain"
	"github.com/evmaxhq/evmax-catalog/internal/pricing"
)

type costCodeListResponse struct {
	CostCodes []catalog.CostCode `json:"cost_codes"`
	Total     int                `json:"total"`
	Offset    int                `json:"offset"`
	Limit     int                `json:"limit,omitempty"`
}

type categoriesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

type productRequest struct {
	SKU           string                 `json:"sku"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	BasePrice     float64                `json:"base_price"`
	BaseCost      float64                `json:"base_cost"`
	PricingTiers  []pricing.PricingTier  `json:"pricing_tiers"`
	MaterialSpecs map[string]interface{} `json:"material_specs"`
}

type productResponse struct {
	ID            int64                  `json:"id"`
	SKU           string                 `json:"sku"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	BasePrice     float64                `json:"base_price"`
	BaseCost      float64                `json:"base_cost"`
	PricingTiers  []pricing.PricingTier  `json:"pricing_tiers"`
	MaterialSpecs map[string]interface{} `json:"material_specs"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type productListResponse struct {
	Products []productResponse `json:"products"`
	Total    int               `json:"total"`
}

type quoteRequest struct {
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	Season       string `json:"season"`
	CustomerTier string `json:"customer_tier"`
}

type quoteResponse struct {
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	pricing.Quote
}

type bomRequest struct {
	ProjectName      string  `json:"project_name"`
	ChargingType     string  `json:"charging_type"`
	NumPorts         int     `json:"num_ports"`
	SiteConditions   string  `json:"site_conditions"`
	ExcavationLength float64 `json:"excavation_length"`
}

type bomResponse struct {
	ProjectName  string                `json:"project_name"`
	ChargingType string                `json:"charging_type"`
	NumPorts     int                   `json:"num_ports"`
	LineItems    []pricing.BOMLineItem `json:"line_items"`
	TotalCost    float64               `json:"total_cost"`
}

type bidRequest struct {
	ProjectName      string                  `json:"project_name"`
	ClientName       string                  `json:"client_name"`
	Status           string                  `json:"status"`
	LineItems        []pricing.LineItemInput `json:"line_items"`
	TaxRate          float64                 `json:"tax_rate"`
	EstimatedRevenue float64                 `json:"estimated_revenue"`
	DurationMonths   int                     `json:"duration_months"`
	Notes            string                  `json:"notes"`
}

type bidResponse struct {
	ID               int64                        `json:"id"`
	BidNumber        string                       `json:"bid_number"`
	ProjectName      string                       `json:"project_name"`
	ClientName       string                       `json:"client_name"`
	Status           string                       `json:"status"`
	LineItems        []pricing.CalculatedLineItem `json:"line_items"`
	Subtotal         float64                      `json:"subtotal"`
	TaxRate          float64                      `json:"tax_rate"`
	TaxAmount        float64                      `json:"tax_amount"`
	TotalAmount      float64                      `json:"total_amount"`
	EstimatedRevenue float64                      `json:"estimated_revenue"`
	DurationMonths   int                          `json:"duration_months"`
	Notes            string                       `json:"notes"`
	ChainNodeID      string                       `json:"chain_node_id,omitempty"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

type bidListResponse struct {
	Bids  []bidResponse `json:"bids"`
	Total int           `json:"total"`
}

// roiRequest distinguishes an omitted operating cost (nil, use the configured
// default) from an explicit zero.
type roiRequest struct {
	ProjectName         string   `json:"project_name"`
	ChargingType        string   `json:"charging_type"`
	NumPorts            int      `json:"num_ports"`
	ExcavationLength    float64  `json:"excavation_length"`
	AnnualRevPerPort    float64  `json:"annual_revenue_per_port"`
	AnnualOpCostPerPort *float64 `json:"annual_operating_cost_per_port"`
}

type registerNodeRequest struct {
	NodeID      string                 `json:"node_id"`
	NodeType    string                 `json:"node_type"`
	ParentNodes []string               `json:"parent_nodes"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type heritageResponse struct {
	NodeID          string   `json:"node_id"`
	HeritageLineage []string `json:"heritage_lineage"`
	TotalAncestors  int      `json:"total_ancestors"`
}

type snapshotResponse struct {
	SnapshotID      string         `json:"snapshot_id"`
	NodeID          string         `json:"node_id"`
	HeritageLineage []string       `json:"heritage_lineage"`
	TotalAncestors  int            `json:"total_ancestors"`
	ChainMetrics    *chain.Metrics `json:"chain_metrics,omitempty"`
	Stale           bool           `json:"stale"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

type contextualizeResponse struct {
	BidID     int64       `json:"bid_id"`
	BidNumber string      `json:"bid_number"`
	Node      *chain.Node `json:"node"`
}
