package recommendation

import (
	"fmt"
	"strings"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

func (e *engine) inventoryRules(_ domain.EfficiencyMetrics, _ domain.BottleneckAnalysis, items []domain.InventoryItem) []domain.Recommendation {
	var below, near []domain.InventoryItem
	for _, item := range items {
		switch {
		case item.BelowMinimum():
			below = append(below, item)
		case item.NearMinimum(e.settings.NearMinimumFactor):
			near = append(near, item)
		}
	}

	var recs []domain.Recommendation

	if len(below) > 0 {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationInventory,
			Priority: domain.PriorityCritical,
			Title:    "Items below minimum stock",
			Description: fmt.Sprintf(
				"%d items are below their minimum stock: %s.", len(below), describeItems(below)),
			Impact: "Production orders may stop for lack of materials",
			ActionItems: []string{
				"Place urgent purchase orders for the listed items",
				"Check which open production orders depend on them",
				"Review minimum stock levels against actual consumption",
			},
			EstimatedBenefit: "Avoid production stoppages caused by stockouts",
			Urgency:          urgency(domain.PriorityCritical),
			AffectedArea:     "inventory",
			Metrics: map[string]float64{
				"itemsBelowMinimum": float64(len(below)),
			},
		})
	}

	if len(near) > 0 {
		named := near
		if len(named) > e.settings.MaxNearMinimumItems {
			named = named[:e.settings.MaxNearMinimumItems]
		}
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationInventory,
			Priority: domain.PriorityHigh,
			Title:    "Items approaching minimum stock",
			Description: fmt.Sprintf(
				"%d items are within %.0f%% of their minimum stock: %s.",
				len(near), e.settings.NearMinimumFactor*100, describeItems(named)),
			Impact: "Risk of stockouts in the coming weeks",
			ActionItems: []string{
				"Schedule replenishment for the listed items",
				"Confirm supplier lead times for these materials",
			},
			EstimatedBenefit: "Continuous material supply",
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "inventory",
			Metrics: map[string]float64{
				"itemsNearMinimum": float64(len(near)),
			},
		})
	}

	return recs
}

func describeItems(items []domain.InventoryItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		stock := fmt.Sprintf("%g/%g", item.CurrentStock, item.MinimumStock)
		if item.Unit != "" {
			stock += " " + item.Unit
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", item.Name, stock))
	}
	return strings.Join(parts, ", ")
}
