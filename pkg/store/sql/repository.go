package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/factory-atlas/pkg/calc"
	"github.com/de-tools/factory-atlas/pkg/models/store"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/rs/zerolog"
)

const (
	// Used when a purchase has no expected delivery date.
	defaultExpectedDeliveryDays = 5
	lowStockFactor              = 1.2
)

type operationsRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewRepository(db *sql.DB, dialect Dialect) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &operationsRepository{
		db:      db,
		dialect: dialect,
	}, nil
}

// withConn runs fn on a dedicated connection that is released on return.
// Any error is reported as a repository error for op.
func (r *operationsRepository) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return repository.Wrap(op, fmt.Errorf("acquire connection: %w", err))
	}
	defer func() {
		if err := conn.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("failed to release connection")
		}
	}()
	return repository.Wrap(op, fn(conn))
}

func (r *operationsRepository) queryFloat(ctx context.Context, op, query string, args ...any) (float64, error) {
	var v sql.NullFloat64
	err := r.withConn(ctx, op, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(&v)
	})
	if err != nil {
		return 0, err
	}
	return calc.NonNegative(v.Float64), nil
}

func (r *operationsRepository) GetProductionTotals(ctx context.Context, start, end time.Time) (store.ProductionTotals, error) {
	query := `
		SELECT COALESCE(SUM(planned_quantity), 0), COALESCE(SUM(produced_quantity), 0)
		FROM production_orders
		WHERE due_date >= ? AND due_date <= ?
	`
	var planned, produced sql.NullFloat64
	err := r.withConn(ctx, "production totals", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, start, end).Scan(&planned, &produced)
	})
	if err != nil {
		return store.ProductionTotals{}, err
	}
	return store.ProductionTotals{
		PlannedUnits:  calc.NonNegative(planned.Float64),
		ProducedUnits: calc.NonNegative(produced.Float64),
	}, nil
}

func (r *operationsRepository) GetActiveStaffCount(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM staff WHERE active = TRUE`

	var count int64
	err := r.withConn(ctx, "active staff", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query).Scan(&count)
	})
	if err != nil {
		return 0, err
	}
	return int(max(count, 0)), nil
}

func (r *operationsRepository) GetConsumedHours(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(actual_hours), 0)
		FROM production_orders
		WHERE status = 'completed' AND completed_at >= ? AND completed_at <= ?
	`
	return r.queryFloat(ctx, "consumed hours", query, start, end)
}

func (r *operationsRepository) GetPurchaseCost(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_cost), 0)
		FROM purchases
		WHERE status IN ('received', 'completed') AND received_at >= ? AND received_at <= ?
	`
	return r.queryFloat(ctx, "purchase cost", query, start, end)
}

func (r *operationsRepository) GetUnitsProduced(ctx context.Context, start, end time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(produced_quantity), 0)
		FROM production_orders
		WHERE status = 'completed' AND completed_at >= ? AND completed_at <= ?
	`
	return r.queryFloat(ctx, "units produced", query, start, end)
}

func (r *operationsRepository) GetLeadTimeStats(ctx context.Context, start, end time.Time) (store.LeadTimeStats, error) {
	query := fmt.Sprintf(`
		SELECT AVG(lead_days), MIN(lead_days), MAX(lead_days), COUNT(*)
		FROM (
			SELECT %s AS lead_days
			FROM production_orders
			WHERE status = 'completed'
				AND started_at IS NOT NULL
				AND started_at < completed_at
				AND completed_at >= ? AND completed_at <= ?
		) lead_times
	`, r.dialect.DaysBetween("started_at", "completed_at"))

	var (
		avg, minDays, maxDays sql.NullFloat64
		count                 int64
	)
	err := r.withConn(ctx, "lead time stats", func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, start, end).Scan(&avg, &minDays, &maxDays, &count)
	})
	if err != nil {
		return store.LeadTimeStats{}, err
	}
	return store.LeadTimeStats{
		AverageDays: calc.NonNegative(avg.Float64),
		MinDays:     calc.NonNegative(minDays.Float64),
		MaxDays:     calc.NonNegative(maxDays.Float64),
		OrdersCount: int(max(count, 0)),
	}, nil
}

func (r *operationsRepository) GetStageDurations(ctx context.Context, start, end time.Time) ([]store.StageDuration, error) {
	query := fmt.Sprintf(`
		SELECT stage_name, COUNT(DISTINCT order_id), AVG(%s)
		FROM order_stages
		WHERE started_at IS NOT NULL
			AND finished_at IS NOT NULL
			AND finished_at >= ? AND finished_at <= ?
		GROUP BY stage_name
		ORDER BY stage_name
	`, r.dialect.DaysBetween("started_at", "finished_at"))

	records := make([]store.StageDuration, 0)
	err := r.withConn(ctx, "stage durations", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, start, end)
		if err != nil {
			return err
		}
		defer closeRows(ctx, rows)

		for rows.Next() {
			var (
				name  string
				count int64
				avg   sql.NullFloat64
			)
			if err := rows.Scan(&name, &count, &avg); err != nil {
				return err
			}
			records = append(records, store.StageDuration{
				StageName:   name,
				OrdersCount: int(max(count, 0)),
				AverageDays: calc.NonNegative(avg.Float64),
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *operationsRepository) GetProductDelays(ctx context.Context, start, end time.Time) ([]store.ProductDelay, error) {
	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.name,
			COUNT(*),
			CAST(SUM(CASE WHEN o.completed_at > o.due_date THEN 1 ELSE 0 END) AS BIGINT),
			AVG(CASE WHEN o.completed_at > o.due_date THEN %s END)
		FROM production_orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.status = 'completed' AND o.completed_at >= ? AND o.completed_at <= ?
		GROUP BY p.id, p.name
		ORDER BY p.name
	`, r.dialect.DaysBetween("o.due_date", "o.completed_at"))

	records := make([]store.ProductDelay, 0)
	err := r.withConn(ctx, "product delays", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, start, end)
		if err != nil {
			return err
		}
		defer closeRows(ctx, rows)

		for rows.Next() {
			var (
				id, name       string
				total, delayed sql.NullInt64
				avgDelay       sql.NullFloat64
			)
			if err := rows.Scan(&id, &name, &total, &delayed, &avgDelay); err != nil {
				return err
			}
			records = append(records, store.ProductDelay{
				ProductID:     id,
				ProductName:   name,
				TotalOrders:   int(max(total.Int64, 0)),
				DelayedOrders: int(max(delayed.Int64, 0)),
				AverageDelay:  calc.NonNegative(avgDelay.Float64),
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *operationsRepository) GetSupplierDeliveries(ctx context.Context, start, end time.Time) ([]store.SupplierDelivery, error) {
	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.name,
			COUNT(*),
			AVG(%s),
			CAST(SUM(CASE WHEN pu.received_at > COALESCE(pu.expected_at, %s) THEN 1 ELSE 0 END) AS BIGINT)
		FROM purchases pu
		JOIN suppliers s ON s.id = pu.supplier_id
		WHERE pu.status IN ('received', 'completed') AND pu.received_at >= ? AND pu.received_at <= ?
		GROUP BY s.id, s.name
		ORDER BY s.name
	`,
		r.dialect.DaysBetween("pu.ordered_at", "pu.received_at"),
		r.dialect.AddDays("pu.ordered_at", defaultExpectedDeliveryDays),
	)

	records := make([]store.SupplierDelivery, 0)
	err := r.withConn(ctx, "supplier deliveries", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, start, end)
		if err != nil {
			return err
		}
		defer closeRows(ctx, rows)

		for rows.Next() {
			var (
				id, name       string
				count, delayed sql.NullInt64
				avgDays        sql.NullFloat64
			)
			if err := rows.Scan(&id, &name, &count, &avgDays, &delayed); err != nil {
				return err
			}
			records = append(records, store.SupplierDelivery{
				SupplierID:          id,
				SupplierName:        name,
				OrdersCount:         int(max(count.Int64, 0)),
				AverageDeliveryDays: calc.NonNegative(avgDays.Float64),
				DelayedDeliveries:   int(max(delayed.Int64, 0)),
			})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *operationsRepository) GetLowStockItems(ctx context.Context) ([]store.InventoryItem, error) {
	query := `
		SELECT id, name, COALESCE(unit, ''), current_stock, minimum_stock
		FROM inventory_items
		WHERE minimum_stock > 0 AND current_stock <= minimum_stock * ?
		ORDER BY current_stock / minimum_stock, name
	`

	records := make([]store.InventoryItem, 0)
	err := r.withConn(ctx, "low stock items", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, lowStockFactor)
		if err != nil {
			return err
		}
		defer closeRows(ctx, rows)

		for rows.Next() {
			var (
				item             store.InventoryItem
				current, minimum sql.NullFloat64
			)
			if err := rows.Scan(&item.ID, &item.Name, &item.Unit, &current, &minimum); err != nil {
				return err
			}
			item.CurrentStock = calc.NonNegative(current.Float64)
			item.MinimumStock = calc.NonNegative(minimum.Float64)
			records = append(records, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close query rows")
	}
}
