package recommendation

import (
	"fmt"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

func (e *engine) stageRules(_ domain.EfficiencyMetrics, b domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	var recs []domain.Recommendation

	for _, stage := range b.SlowStages {
		if stage.ImpactLevel != domain.ImpactHigh {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationProcess,
			Priority: domain.PriorityHigh,
			Title:    fmt.Sprintf("Bottleneck in stage %q", stage.StageName),
			Description: fmt.Sprintf(
				"Stage %q takes %.1f days on average across %d orders.",
				stage.StageName, stage.AverageDuration, stage.OrdersCount),
			Impact: "Every order passing through this stage is slowed down",
			ActionItems: []string{
				stage.Suggestion,
				"Measure waiting versus processing time in this stage",
				"Balance workload with the stages before and after it",
			},
			EstimatedBenefit: "Faster flow for all orders that pass through the stage",
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "process",
			Metrics: map[string]float64{
				"averageDuration": stage.AverageDuration,
				"ordersCount":     float64(stage.OrdersCount),
			},
		})
	}

	return recs
}

func (e *engine) productRules(_ domain.EfficiencyMetrics, b domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	var recs []domain.Recommendation

	for _, product := range b.ProblematicProducts {
		if len(recs) >= e.settings.MaxProductRecommendations {
			break
		}
		if product.ImpactLevel != domain.ImpactHigh {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationQuality,
			Priority: domain.PriorityHigh,
			Title:    fmt.Sprintf("Recurring delays on %s", product.ProductName),
			Description: fmt.Sprintf(
				"%d of %d orders (%.1f%%) for %s finished late, by %.1f days on average.",
				product.DelayedOrders, product.TotalOrders, product.DelayRate, product.ProductName, product.AverageDelay),
			Impact: "Unreliable delivery dates for this product",
			ActionItems: []string{
				"Review the routing and standard times of this product",
				"Check material and component availability before release",
				"Update quoted lead times to match real performance",
			},
			EstimatedBenefit: fmt.Sprintf("Up to %d orders delivered on time per month", product.DelayedOrders),
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "product",
			Metrics: map[string]float64{
				"delayRate":     product.DelayRate,
				"averageDelay":  product.AverageDelay,
				"delayedOrders": float64(product.DelayedOrders),
			},
		})
	}

	return recs
}

func (e *engine) supplierRules(_ domain.EfficiencyMetrics, b domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	suppliers := b.SlowSuppliers
	if len(suppliers) > e.settings.MaxSupplierRecommendations {
		suppliers = suppliers[:e.settings.MaxSupplierRecommendations]
	}

	var recs []domain.Recommendation
	for _, supplier := range suppliers {
		metrics := map[string]float64{
			"averageDeliveryTime": supplier.AverageDeliveryTime,
			"delayDays":           supplier.DelayDays,
			"reliability":         supplier.Reliability,
		}

		switch {
		case supplier.ImpactLevel == domain.ImpactHigh:
			recs = append(recs, domain.Recommendation{
				Type:     domain.RecommendationSupplier,
				Priority: domain.PriorityHigh,
				Title:    fmt.Sprintf("Unreliable supplier: %s", supplier.SupplierName),
				Description: fmt.Sprintf(
					"%s delivers in %.1f days on average, %.1f days over the expected %.0f, with %.1f%% on-time deliveries.",
					supplier.SupplierName, supplier.AverageDeliveryTime, supplier.DelayDays, supplier.ExpectedDeliveryTime, supplier.Reliability),
				Impact: "Late materials hold up production orders",
				ActionItems: []string{
					"Escalate delivery performance with the supplier",
					"Qualify an alternative supplier for critical materials",
					"Increase safety stock of materials from this supplier",
				},
				EstimatedBenefit: fmt.Sprintf("%.1f days less waiting for materials", supplier.DelayDays),
				Urgency:          urgency(domain.PriorityHigh),
				AffectedArea:     "purchasing",
				Metrics:          metrics,
			})
		case supplier.Reliability < e.settings.SupplierReliabilityFloor:
			recs = append(recs, domain.Recommendation{
				Type:     domain.RecommendationSupplier,
				Priority: domain.PriorityMedium,
				Title:    fmt.Sprintf("Monitor supplier %s", supplier.SupplierName),
				Description: fmt.Sprintf(
					"%s delivered %.1f%% of orders on time.", supplier.SupplierName, supplier.Reliability),
				Impact: "Occasional material shortages",
				ActionItems: []string{
					"Agree on delivery commitments with the supplier",
					"Place orders earlier to absorb delays",
				},
				EstimatedBenefit: "More predictable material availability",
				Urgency:          urgency(domain.PriorityMedium),
				AffectedArea:     "purchasing",
				Metrics:          metrics,
			})
		}
	}

	return recs
}
