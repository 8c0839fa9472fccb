package store

// ProductionTotals holds planned and produced units for orders due in a range.
type ProductionTotals struct {
	PlannedUnits  float64
	ProducedUnits float64
}

// LeadTimeStats holds order start-to-completion statistics in days.
type LeadTimeStats struct {
	AverageDays float64
	MinDays     float64
	MaxDays     float64
	OrdersCount int
}

// StageDuration is one production stage aggregated over a range.
type StageDuration struct {
	StageName   string
	OrdersCount int
	AverageDays float64
}

// ProductDelay is the delivery performance of one product's orders.
type ProductDelay struct {
	ProductID     string
	ProductName   string
	TotalOrders   int
	DelayedOrders int
	AverageDelay  float64 // days, over delayed orders
}

// SupplierDelivery is the delivery performance of one supplier.
type SupplierDelivery struct {
	SupplierID          string
	SupplierName        string
	OrdersCount         int
	AverageDeliveryDays float64
	DelayedDeliveries   int
}

// OnTimeDeliveries is the number of deliveries that were not late.
func (s SupplierDelivery) OnTimeDeliveries() int {
	if s.DelayedDeliveries > s.OrdersCount {
		return 0
	}
	return s.OrdersCount - s.DelayedDeliveries
}

// InventoryItem is a raw stock row.
type InventoryItem struct {
	ID           string
	Name         string
	Unit         string
	CurrentStock float64
	MinimumStock float64
}
