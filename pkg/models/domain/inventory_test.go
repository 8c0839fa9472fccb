package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryItem_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		item      InventoryItem
		wantBelow bool
		wantNear  bool
	}{
		{name: "below minimum", item: InventoryItem{CurrentStock: 4, MinimumStock: 10}, wantBelow: true},
		{name: "at minimum", item: InventoryItem{CurrentStock: 10, MinimumStock: 10}, wantNear: true},
		{name: "within factor", item: InventoryItem{CurrentStock: 12, MinimumStock: 10}, wantNear: true},
		{name: "above factor", item: InventoryItem{CurrentStock: 13, MinimumStock: 10}},
		{name: "no minimum and empty", item: InventoryItem{CurrentStock: 0, MinimumStock: 0}},
		{name: "no minimum with stock", item: InventoryItem{CurrentStock: 5, MinimumStock: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBelow, tt.item.BelowMinimum())
			assert.Equal(t, tt.wantNear, tt.item.NearMinimum(1.2))
		})
	}
}
