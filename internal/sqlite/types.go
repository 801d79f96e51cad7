// File path: internal/sqlite/types.go
package sqlite

import "time"

// Product represents a sellable catalog product row.
type Product struct {
	ID            int64     `db:"id"`
	SKU           string    `db:"sku"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	BasePrice     float64   `db:"base_price"`
	BaseCost      float64   `db:"base_cost"`
	PricingTiers  string    `db:"pricing_tiers"`
	MaterialSpecs string    `db:"material_specs"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Bid represents a stored bid with its serialized line items.
type Bid struct {
	ID               int64     `db:"id"`
	BidNumber        string    `db:"bid_number"`
	ProjectName      string    `db:"project_name"`
	ClientName       string    `db:"client_name"`
	Status           string    `db:"status"`
	LineItems        string    `db:"line_items"`
	Subtotal         float64   `db:"subtotal"`
	TaxRate          float64   `db:"tax_rate"`
	TaxAmount        float64   `db:"tax_amount"`
	TotalAmount      float64   `db:"total_amount"`
	EstimatedRevenue float64   `db:"estimated_revenue"`
	DurationMonths   int       `db:"duration_months"`
	Notes            string    `db:"notes"`
	ChainNodeID      string    `db:"chain_node_id"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// AuditRow represents an audit entry.
type AuditRow struct {
	ID        int64     `db:"id"`
	Entity    string    `db:"entity"`
	EntityID  *int64    `db:"entity_id"`
	Action    string    `db:"action"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}
