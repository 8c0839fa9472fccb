package repository

import (
	"context"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/store"
)

// Repository answers the read-only aggregate queries the analytics pipeline
// is built on. Range-bound methods include both start and end.
type Repository interface {
	// GetProductionTotals sums planned and produced quantities of the orders
	// due in the range, whatever their status.
	GetProductionTotals(ctx context.Context, start, end time.Time) (store.ProductionTotals, error)
	GetActiveStaffCount(ctx context.Context) (int, error)
	// GetConsumedHours sums actual hours of orders completed in the range.
	GetConsumedHours(ctx context.Context, start, end time.Time) (float64, error)
	// GetPurchaseCost sums purchases received in the range.
	GetPurchaseCost(ctx context.Context, start, end time.Time) (float64, error)
	// GetUnitsProduced sums produced quantities of orders completed in the range.
	GetUnitsProduced(ctx context.Context, start, end time.Time) (float64, error)
	// GetLeadTimeStats covers orders completed in the range that have a start
	// before their completion.
	GetLeadTimeStats(ctx context.Context, start, end time.Time) (store.LeadTimeStats, error)
	// GetStageDurations groups stages finished in the range by stage name.
	GetStageDurations(ctx context.Context, start, end time.Time) ([]store.StageDuration, error)
	// GetProductDelays groups orders completed in the range by product. An
	// order is delayed when it completed after its due date.
	GetProductDelays(ctx context.Context, start, end time.Time) ([]store.ProductDelay, error)
	// GetSupplierDeliveries groups purchases received in the range by supplier.
	GetSupplierDeliveries(ctx context.Context, start, end time.Time) ([]store.SupplierDelivery, error)
	// GetLowStockItems returns items with a positive minimum whose stock is
	// within 120% of it, lowest stock ratio first.
	GetLowStockItems(ctx context.Context) ([]store.InventoryItem, error)
}
