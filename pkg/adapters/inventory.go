package adapters

import (
	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/models/store"
)

func MapStoreInventoryItemToDomain(item store.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:           item.ID,
		Name:         item.Name,
		Unit:         item.Unit,
		CurrentStock: item.CurrentStock,
		MinimumStock: item.MinimumStock,
	}
}

func MapStoreInventoryItemsToDomain(items []store.InventoryItem) []domain.InventoryItem {
	res := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		res = append(res, MapStoreInventoryItemToDomain(item))
	}
	return res
}
