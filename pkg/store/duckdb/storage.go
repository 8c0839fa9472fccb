package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProductsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL
	);
`
const SuppliersSchema = `
	CREATE TABLE IF NOT EXISTS suppliers (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL
	);
`
const StaffSchema = `
	CREATE TABLE IF NOT EXISTS staff (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
`
const ProductionOrdersSchema = `
	CREATE TABLE IF NOT EXISTS production_orders (
		id VARCHAR PRIMARY KEY,
		product_id VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		planned_quantity DOUBLE NOT NULL DEFAULT 0,
		produced_quantity DOUBLE NOT NULL DEFAULT 0,
		started_at TIMESTAMP NULL,
		due_date TIMESTAMP NOT NULL,
		completed_at TIMESTAMP NULL,
		actual_hours DOUBLE NOT NULL DEFAULT 0
	);
`
const OrderStagesSchema = `
	CREATE TABLE IF NOT EXISTS order_stages (
		order_id VARCHAR NOT NULL,
		stage_name VARCHAR NOT NULL,
		started_at TIMESTAMP NULL,
		finished_at TIMESTAMP NULL
	);
`
const PurchasesSchema = `
	CREATE TABLE IF NOT EXISTS purchases (
		id VARCHAR PRIMARY KEY,
		supplier_id VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		total_cost DOUBLE NOT NULL DEFAULT 0,
		ordered_at TIMESTAMP NOT NULL,
		expected_at TIMESTAMP NULL,
		received_at TIMESTAMP NULL
	);
`
const InventoryItemsSchema = `
	CREATE TABLE IF NOT EXISTS inventory_items (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		unit VARCHAR,
		current_stock DOUBLE NOT NULL DEFAULT 0,
		minimum_stock DOUBLE NOT NULL DEFAULT 0
	);
`

// Tables lists the operational tables in load order.
var Tables = []string{
	"products",
	"suppliers",
	"staff",
	"production_orders",
	"order_stages",
	"purchases",
	"inventory_items",
}

var bootQueries = []string{
	ProductsSchema,
	SuppliersSchema,
	StaffSchema,
	ProductionOrdersSchema,
	OrderStagesSchema,
	PurchasesSchema,
	InventoryItemsSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

func DefaultSettings() Settings {
	return Settings{
		DbPath:  "factory-atlas.db",
		Threads: 4,
	}
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = DefaultSettings().Threads
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", settings.DbPath, threads), nil)
	if err != nil {
		return nil, err
	}

	// The schema is created once here; running it per pooled connection races
	// on the catalog when the repository opens connections concurrently.
	db := sql.OpenDB(c)
	for _, query := range bootQueries {
		if _, err := db.ExecContext(context.Background(), query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to boot schema: %w", err)
		}
	}
	return db, nil
}
