// File path: internal/sqlite/queries.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/evmaxhq/evmax-catalog/internal/catalog"
)

// ErrNotFound is returned when a requested row does not exist or is inactive.
var ErrNotFound = errors.New("not found")

// ListCostCodes returns the seeded cost codes, optionally filtered by
// category, ordered by code.
func (s *Store) ListCostCodes(ctx context.Context, category string) ([]catalog.CostCode, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	codes := []catalog.CostCode{}
	category = strings.TrimSpace(category)
	if category == "" {
		if err := s.db.SelectContext(ctx, &codes,
			`SELECT code, category, description, unit, unit_cost, material_cost, labor_cost
                        FROM cost_codes ORDER BY code`); err != nil {
			return nil, fmt.Errorf("select cost codes: %w", err)
		}
		return codes, nil
	}
	if err := s.db.SelectContext(ctx, &codes,
		`SELECT code, category, description, unit, unit_cost, material_cost, labor_cost
                FROM cost_codes WHERE category = ? ORDER BY code`, category); err != nil {
		return nil, fmt.Errorf("select cost codes: %w", err)
	}
	return codes, nil
}

// CostCodeByCode retrieves a single cost code row.
func (s *Store) CostCodeByCode(ctx context.Context, code string) (*catalog.CostCode, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("cost code required")
	}
	var row catalog.CostCode
	err := s.db.GetContext(ctx, &row,
		`SELECT code, category, description, unit, unit_cost, material_cost, labor_cost
                FROM cost_codes WHERE code = ?`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select cost code: %w", err)
	}
	return &row, nil
}

// CreateProduct inserts a product and returns the stored row.
func (s *Store) CreateProduct(ctx context.Context, product Product) (*Product, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	product.SKU = strings.TrimSpace(product.SKU)
	if product.SKU == "" {
		return nil, fmt.Errorf("product sku required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return nil, fmt.Errorf("product name required")
	}
	if product.PricingTiers == "" {
		product.PricingTiers = "[]"
	}
	if product.MaterialSpecs == "" {
		product.MaterialSpecs = "{}"
	}
	var id int64
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO products(sku, name, description, category, base_price, base_cost, pricing_tiers, material_specs, is_active)
                        VALUES(?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			product.SKU, product.Name, product.Description, product.Category,
			product.BasePrice, product.BaseCost, product.PricingTiers, product.MaterialSpecs)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("product id: %w", err)
		}
		return recordAudit(ctx, tx, "products", sql.NullInt64{Int64: id, Valid: true}, "created", product.SKU)
	})
	if err != nil {
		return nil, err
	}
	return s.ProductByID(ctx, id)
}

// ProductByID retrieves an active product by its identifier.
func (s *Store) ProductByID(ctx context.Context, id int64) (*Product, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	var product Product
	err := s.db.GetContext(ctx, &product, `SELECT * FROM products WHERE id = ? AND is_active = 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &product, nil
}

// ProductBySKU retrieves an active product by SKU.
func (s *Store) ProductBySKU(ctx context.Context, sku string) (*Product, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, fmt.Errorf("product sku required")
	}
	var product Product
	err := s.db.GetContext(ctx, &product, `SELECT * FROM products WHERE sku = ? AND is_active = 1`, sku)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &product, nil
}

// ListProducts returns active products, optionally filtered by category.
func (s *Store) ListProducts(ctx context.Context, category string) ([]Product, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	products := []Product{}
	category = strings.TrimSpace(category)
	if category == "" {
		if err := s.db.SelectContext(ctx, &products,
			`SELECT * FROM products WHERE is_active = 1 ORDER BY sku`); err != nil {
			return nil, fmt.Errorf("select products: %w", err)
		}
		return products, nil
	}
	if err := s.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE is_active = 1 AND category = ? ORDER BY sku`, category); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies the mutable fields of the provided product.
func (s *Store) UpdateProduct(ctx context.Context, product Product) (*Product, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	if product.ID <= 0 {
		return nil, fmt.Errorf("product id required")
	}
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET
                                name = ?,
                                description = ?,
                                category = ?,
                                base_price = ?,
                                base_cost = ?,
                                pricing_tiers = ?,
                                material_specs = ?,
                                updated_at = CURRENT_TIMESTAMP
                        WHERE id = ? AND is_active = 1`,
			product.Name, product.Description, product.Category,
			product.BasePrice, product.BaseCost, product.PricingTiers, product.MaterialSpecs,
			product.ID)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update product result: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return recordAudit(ctx, tx, "products", sql.NullInt64{Int64: product.ID, Valid: true}, "updated", product.SKU)
	})
	if err != nil {
		return nil, err
	}
	return s.ProductByID(ctx, product.ID)
}

// DeleteProduct soft-deletes a product.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND is_active = 1`, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete product result: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return recordAudit(ctx, tx, "products", sql.NullInt64{Int64: id, Valid: true}, "deleted", "")
	})
}

// CreateBid inserts a bid, assigning a timestamp-derived bid number.
func (s *Store) CreateBid(ctx context.Context, bid Bid) (*Bid, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	if strings.TrimSpace(bid.ProjectName) == "" {
		return nil, fmt.Errorf("project name required")
	}
	if bid.BidNumber == "" {
		bid.BidNumber = newBidNumber(time.Now())
	}
	if bid.Status == "" {
		bid.Status = "draft"
	}
	if bid.LineItems == "" {
		bid.LineItems = "[]"
	}
	var id int64
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO bids(bid_number, project_name, client_name, status, line_items,
                                subtotal, tax_rate, tax_amount, total_amount,
                                estimated_revenue, duration_months, notes, chain_node_id, is_active)
                        VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			bid.BidNumber, bid.ProjectName, bid.ClientName, bid.Status, bid.LineItems,
			bid.Subtotal, bid.TaxRate, bid.TaxAmount, bid.TotalAmount,
			bid.EstimatedRevenue, bid.DurationMonths, bid.Notes, bid.ChainNodeID)
		if err != nil {
			return fmt.Errorf("insert bid: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("bid id: %w", err)
		}
		return recordAudit(ctx, tx, "bids", sql.NullInt64{Int64: id, Valid: true}, "created", bid.BidNumber)
	})
	if err != nil {
		return nil, err
	}
	return s.BidByID(ctx, id)
}

// BidByID retrieves an active bid by its identifier.
func (s *Store) BidByID(ctx context.Context, id int64) (*Bid, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	var bid Bid
	err := s.db.GetContext(ctx, &bid, `SELECT * FROM bids WHERE id = ? AND is_active = 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select bid: %w", err)
	}
	return &bid, nil
}

// ListBids returns active bids ordered by recency, optionally filtered by
// status.
func (s *Store) ListBids(ctx context.Context, status string) ([]Bid, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	bids := []Bid{}
	status = strings.TrimSpace(status)
	if status == "" {
		if err := s.db.SelectContext(ctx, &bids,
			`SELECT * FROM bids WHERE is_active = 1 ORDER BY created_at DESC, id DESC`); err != nil {
			return nil, fmt.Errorf("select bids: %w", err)
		}
		return bids, nil
	}
	if err := s.db.SelectContext(ctx, &bids,
		`SELECT * FROM bids WHERE is_active = 1 AND status = ? ORDER BY created_at DESC, id DESC`, status); err != nil {
		return nil, fmt.Errorf("select bids: %w", err)
	}
	return bids, nil
}

// UpdateBid applies the mutable fields of the provided bid.
func (s *Store) UpdateBid(ctx context.Context, bid Bid) (*Bid, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("sqlite store not initialised")
	}
	if bid.ID <= 0 {
		return nil, fmt.Errorf("bid id required")
	}
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE bids SET
                                project_name = ?,
                                client_name = ?,
                                status = ?,
                                line_items = ?,
                                subtotal = ?,
                                tax_rate = ?,
                                tax_amount = ?,
                                total_amount = ?,
                                estimated_revenue = ?,
                                duration_months = ?,
                                notes = ?,
                                chain_node_id = ?,
                                updated_at = CURRENT_TIMESTAMP
                        WHERE id = ? AND is_active = 1`,
			bid.ProjectName, bid.ClientName, bid.Status, bid.LineItems,
			bid.Subtotal, bid.TaxRate, bid.TaxAmount, bid.TotalAmount,
			bid.EstimatedRevenue, bid.DurationMonths, bid.Notes, bid.ChainNodeID,
			bid.ID)
		if err != nil {
			return fmt.Errorf("update bid: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update bid result: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return recordAudit(ctx, tx, "bids", sql.NullInt64{Int64: bid.ID, Valid: true}, "updated", bid.BidNumber)
	})
	if err != nil {
		return nil, err
	}
	return s.BidByID(ctx, bid.ID)
}

// DeleteBid soft-deletes a bid.
func (s *Store) DeleteBid(ctx context.Context, id int64) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not initialised")
	}
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE bids SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND is_active = 1`, id)
		if err != nil {
			return fmt.Errorf("delete bid: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete bid result: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return recordAudit(ctx, tx, "bids", sql.NullInt64{Int64: id, Valid: true}, "deleted", "")
	})
}

func newBidNumber(now time.Time) string {
	return "BID-" + now.UTC().Format("20060102150405")
}
