package domain

// InventoryItem is a stock position close to or below its minimum.
type InventoryItem struct {
	ID           string
	Name         string
	Unit         string
	CurrentStock float64
	MinimumStock float64
}

// BelowMinimum reports whether the item is under its minimum stock.
func (i InventoryItem) BelowMinimum() bool {
	return i.CurrentStock < i.MinimumStock
}

// NearMinimum reports whether the item is at or above its minimum but within
// the given factor of it (factor 1.2 means within 120% of minimum). Items
// without a minimum are never near it.
func (i InventoryItem) NearMinimum(factor float64) bool {
	return i.MinimumStock > 0 && !i.BelowMinimum() && i.CurrentStock <= i.MinimumStock*factor
}
