package sql

import (
	"context"
	"database/sql"
	"testing"

	"github.com/de-tools/factory-atlas/pkg/models/store"
	"github.com/de-tools/factory-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureQueries = []string{
	`INSERT INTO products VALUES ('p1', 'Chair'), ('p2', 'Table')`,
	`INSERT INTO suppliers VALUES ('s1', 'Acme'), ('s2', 'Bolt')`,
	`INSERT INTO staff VALUES ('e1', 'Ana', TRUE), ('e2', 'Ben', TRUE), ('e3', 'Cleo', TRUE), ('e4', 'Dan', FALSE)`,
	`INSERT INTO production_orders VALUES
		('o1', 'p1', 'completed', 10, 10, TIMESTAMP '2024-05-01 00:00:00', TIMESTAMP '2024-05-05 00:00:00', TIMESTAMP '2024-05-04 00:00:00', 20),
		('o2', 'p1', 'completed', 10, 8, TIMESTAMP '2024-05-02 00:00:00', TIMESTAMP '2024-05-06 00:00:00', TIMESTAMP '2024-05-08 00:00:00', 30),
		('o3', 'p2', 'in_progress', 5, 2, TIMESTAMP '2024-05-10 00:00:00', TIMESTAMP '2024-05-20 00:00:00', NULL, 0),
		('o4', 'p2', 'completed', 4, 4, TIMESTAMP '2024-04-01 00:00:00', TIMESTAMP '2024-04-10 00:00:00', TIMESTAMP '2024-04-09 00:00:00', 12)`,
	`INSERT INTO order_stages VALUES
		('o1', 'cutting', TIMESTAMP '2024-05-01 00:00:00', TIMESTAMP '2024-05-02 00:00:00'),
		('o2', 'cutting', TIMESTAMP '2024-05-02 00:00:00', TIMESTAMP '2024-05-05 00:00:00'),
		('o1', 'assembly', TIMESTAMP '2024-05-02 00:00:00', TIMESTAMP '2024-05-04 00:00:00'),
		('o3', 'assembly', TIMESTAMP '2024-05-10 00:00:00', NULL)`,
	`INSERT INTO purchases VALUES
		('pu1', 's1', 'received', 1000, TIMESTAMP '2024-05-01 00:00:00', TIMESTAMP '2024-05-05 00:00:00', TIMESTAMP '2024-05-08 00:00:00'),
		('pu2', 's1', 'received', 500, TIMESTAMP '2024-05-10 00:00:00', NULL, TIMESTAMP '2024-05-13 00:00:00'),
		('pu3', 's2', 'pending', 700, TIMESTAMP '2024-05-20 00:00:00', TIMESTAMP '2024-05-25 00:00:00', NULL)`,
	`INSERT INTO inventory_items VALUES
		('i1', 'Resin', 'l', 2, 10),
		('i2', 'Screws', NULL, 110, 100),
		('i3', 'Bolts', 'pcs', 500, 100),
		('i4', 'Labels', 'pcs', 0, 0)`,
}

func setupDuckDB(t *testing.T) *sql.DB {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	for _, q := range fixtureQueries {
		_, err := db.Exec(q)
		require.NoError(t, err)
	}
	return db
}

func TestRepository_DuckDB(t *testing.T) {
	ctx := context.Background()
	repo, err := NewRepository(setupDuckDB(t), DuckDB)
	require.NoError(t, err)

	t.Run("production totals use due date", func(t *testing.T) {
		totals, err := repo.GetProductionTotals(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, store.ProductionTotals{PlannedUnits: 25, ProducedUnits: 20}, totals)
	})

	t.Run("active staff", func(t *testing.T) {
		count, err := repo.GetActiveStaffCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("completed order figures", func(t *testing.T) {
		hours, err := repo.GetConsumedHours(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, 50.0, hours)

		units, err := repo.GetUnitsProduced(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, 18.0, units)
	})

	t.Run("purchase cost counts received purchases", func(t *testing.T) {
		cost, err := repo.GetPurchaseCost(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, cost)
	})

	t.Run("lead time", func(t *testing.T) {
		stats, err := repo.GetLeadTimeStats(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, store.LeadTimeStats{AverageDays: 4.5, MinDays: 3, MaxDays: 6, OrdersCount: 2}, stats)
	})

	t.Run("stage durations skip unfinished stages", func(t *testing.T) {
		stages, err := repo.GetStageDurations(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, []store.StageDuration{
			{StageName: "assembly", OrdersCount: 1, AverageDays: 2},
			{StageName: "cutting", OrdersCount: 2, AverageDays: 2},
		}, stages)
	})

	t.Run("product delays", func(t *testing.T) {
		delays, err := repo.GetProductDelays(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, []store.ProductDelay{
			{ProductID: "p1", ProductName: "Chair", TotalOrders: 2, DelayedOrders: 1, AverageDelay: 2},
		}, delays)
	})

	t.Run("supplier deliveries fall back to five days", func(t *testing.T) {
		deliveries, err := repo.GetSupplierDeliveries(ctx, rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Equal(t, []store.SupplierDelivery{
			{SupplierID: "s1", SupplierName: "Acme", OrdersCount: 2, AverageDeliveryDays: 5, DelayedDeliveries: 1},
		}, deliveries)
	})

	t.Run("low stock ordered by stock ratio", func(t *testing.T) {
		items, err := repo.GetLowStockItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, []store.InventoryItem{
			{ID: "i1", Name: "Resin", Unit: "l", CurrentStock: 2, MinimumStock: 10},
			{ID: "i2", Name: "Screws", CurrentStock: 110, MinimumStock: 100},
		}, items)
	})
}
