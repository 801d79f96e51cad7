// File path: internal/sqlite/store.go

// Package sqlite persists products, bids, and the seeded cost-code catalog in
// an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/evmaxhq/evmax-catalog/internal/catalog"
)

// Store wraps a pooled sqlx.DB connection to the SQLite database.
type Store struct {
	db *sqlx.DB
}

// Open constructs a Store backed by the SQLite database at the provided path.
// The schema is migrated and the cost-code catalog seeded on first use.
func Open(path string) (*Store, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		cfg.Path = trimmed
	}
	return OpenWithConfig(cfg)
}

// OpenWithConfig constructs a Store using the provided configuration.
func OpenWithConfig(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	busy := int(cfg.BusyTimeout / time.Millisecond)
	if busy <= 0 {
		busy = 5000
	}
	// Journal mode cannot change inside a transaction, so WAL is set via the
	// DSN rather than in the migration statements.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", abs, busy)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingTimeout := cfg.BusyTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.seedCostCodes(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying sqlx.DB for advanced callers.
func (s *Store) DB() *sqlx.DB {
	if s == nil {
		return nil
	}
	return s.db
}

func (s *Store) migrate(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// seedCostCodes loads the static catalog into the cost_codes table so the
// catalog is queryable alongside products and bids. Existing rows are
// refreshed to pick up catalog updates across releases.
func (s *Store) seedCostCodes(ctx context.Context) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, code := range catalog.All() {
			query := `INSERT INTO cost_codes(code, category, description, unit, unit_cost, material_cost, labor_cost)
                                VALUES(?, ?, ?, ?, ?, ?, ?)
                                ON CONFLICT(code) DO UPDATE SET
                                        category = excluded.category,
                                        description = excluded.description,
                                        unit = excluded.unit,
                                        unit_cost = excluded.unit_cost,
                                        material_cost = excluded.material_cost,
                                        labor_cost = excluded.labor_cost`
			if _, err := tx.ExecContext(ctx, query,
				code.Code, string(code.Category), code.Description, code.Unit,
				code.UnitCost, code.MaterialCost, code.LaborCost); err != nil {
				return fmt.Errorf("seed cost code %s: %w", code.Code, err)
			}
		}
		return recordAudit(ctx, tx, "cost_codes", sql.NullInt64{}, "catalog_seeded",
			fmt.Sprintf("seeded %d cost codes", len(catalog.All())))
	})
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cost_codes (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                code TEXT NOT NULL UNIQUE,
                category TEXT NOT NULL,
                description TEXT NOT NULL,
                unit TEXT NOT NULL,
                unit_cost REAL NOT NULL,
                material_cost REAL NOT NULL DEFAULT 0,
                labor_cost REAL NOT NULL DEFAULT 0
        );`,
	`CREATE TABLE IF NOT EXISTS products (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                sku TEXT NOT NULL UNIQUE,
                name TEXT NOT NULL,
                description TEXT NOT NULL DEFAULT '',
                category TEXT NOT NULL DEFAULT '',
                base_price REAL NOT NULL,
                base_cost REAL NOT NULL DEFAULT 0,
                pricing_tiers TEXT NOT NULL DEFAULT '[]',
                material_specs TEXT NOT NULL DEFAULT '{}',
                is_active INTEGER NOT NULL DEFAULT 1,
                created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS bids (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                bid_number TEXT NOT NULL UNIQUE,
                project_name TEXT NOT NULL,
                client_name TEXT NOT NULL DEFAULT '',
                status TEXT NOT NULL DEFAULT 'draft',
                line_items TEXT NOT NULL DEFAULT '[]',
                subtotal REAL NOT NULL DEFAULT 0,
                tax_rate REAL NOT NULL DEFAULT 0,
                tax_amount REAL NOT NULL DEFAULT 0,
                total_amount REAL NOT NULL DEFAULT 0,
                estimated_revenue REAL NOT NULL DEFAULT 0,
                duration_months INTEGER NOT NULL DEFAULT 0,
                notes TEXT NOT NULL DEFAULT '',
                chain_node_id TEXT NOT NULL DEFAULT '',
                is_active INTEGER NOT NULL DEFAULT 1,
                created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
                updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE TABLE IF NOT EXISTS audit (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                entity TEXT NOT NULL,
                entity_id INTEGER,
                action TEXT NOT NULL,
                detail TEXT,
                created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );`,
	`CREATE INDEX IF NOT EXISTS idx_cost_codes_category ON cost_codes(category);`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);`,
	`CREATE INDEX IF NOT EXISTS idx_products_active ON products(is_active);`,
	`CREATE INDEX IF NOT EXISTS idx_bids_status ON bids(status);`,
	`CREATE INDEX IF NOT EXISTS idx_bids_active_created ON bids(is_active, created_at);`,
	`CREATE VIEW IF NOT EXISTS bid_totals_view AS
                SELECT
                        b.id,
                        b.bid_number,
                        b.project_name,
                        b.status,
                        b.subtotal,
                        b.tax_amount,
                        b.total_amount,
                        b.estimated_revenue,
                        b.estimated_revenue - b.total_amount AS projected_profit,
                        b.created_at
                FROM bids b
                WHERE b.is_active = 1;`,
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func recordAudit(ctx context.Context, tx *sqlx.Tx, entity string, entityID sql.NullInt64, action, detail string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO audit(entity, entity_id, action, detail) VALUES(?, ?, ?, ?)`,
		entity, entityID, action, detail); err != nil {
		return fmt.Errorf("record audit: %w", err)
	}
	return nil
}
