package recommendation

import (
	"fmt"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

func (e *engine) productionRules(m domain.EfficiencyMetrics, _ domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	s := e.settings
	pe := m.ProductionEfficiency
	var recs []domain.Recommendation

	switch {
	case pe.Status == domain.StatusCritical || pe.EfficiencyRate < s.EfficiencyCriticalRate:
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationProduction,
			Priority: domain.PriorityCritical,
			Title:    "Production efficiency critically low",
			Description: fmt.Sprintf(
				"Only %.1f%% of planned units were produced (%.0f of %.0f). Output is far below plan.",
				pe.EfficiencyRate, pe.ProducedUnits, pe.PlannedUnits),
			Impact: "Missed deliveries and idle fixed costs spread over fewer units",
			ActionItems: []string{
				"Run a root cause analysis on the orders that missed their plan",
				"Review machine availability and unplanned downtime",
				"Check material availability before releasing orders",
				"Align the production plan with real staff capacity",
			},
			EstimatedBenefit: fmt.Sprintf("Up to %.0f%% more output by reaching the %.0f%% target", s.EfficiencyHighRate-pe.EfficiencyRate, s.EfficiencyHighRate),
			Urgency:          urgency(domain.PriorityCritical),
			AffectedArea:     "production",
			Metrics: map[string]float64{
				"efficiencyRate": pe.EfficiencyRate,
				"plannedUnits":   pe.PlannedUnits,
				"producedUnits":  pe.ProducedUnits,
			},
		})
	case pe.Status == domain.StatusWarning || pe.EfficiencyRate < s.EfficiencyHighRate:
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationProduction,
			Priority: domain.PriorityHigh,
			Title:    "Improve production efficiency",
			Description: fmt.Sprintf(
				"Production efficiency is %.1f%%, below the %.0f%% target.",
				pe.EfficiencyRate, s.EfficiencyHighRate),
			Impact: "Lower throughput and growing order backlog",
			ActionItems: []string{
				"Identify the products with the largest gap between plan and output",
				"Standardize setups to shorten changeovers",
				"Review the realism of planned quantities",
			},
			EstimatedBenefit: fmt.Sprintf("%.0f%% additional output by closing the gap to target", s.EfficiencyHighRate-pe.EfficiencyRate),
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "production",
			Metrics: map[string]float64{
				"efficiencyRate": pe.EfficiencyRate,
				"target":         s.EfficiencyHighRate,
			},
		})
	}

	if trend := pe.Trend.Percent(); trend < 0 && -trend > s.EfficiencyDeclineTrend {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationProduction,
			Priority: domain.PriorityHigh,
			Title:    "Production efficiency is declining",
			Description: fmt.Sprintf(
				"Efficiency dropped %s compared with the previous month.", pe.Trend),
			Impact: "A continued decline will compromise delivery commitments",
			ActionItems: []string{
				"Compare this month's orders with last month's to find what changed",
				"Check for new products, staff turnover or equipment problems",
				"Set weekly efficiency checkpoints until the trend reverses",
			},
			EstimatedBenefit: "Recover last month's efficiency level",
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "production",
			Metrics: map[string]float64{
				"trend":          trend,
				"efficiencyRate": pe.EfficiencyRate,
			},
		})
	}

	return recs
}

func (e *engine) capacityRules(m domain.EfficiencyMetrics, _ domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	s := e.settings
	cu := m.CapacityUtilization
	var recs []domain.Recommendation

	if cu.UtilizationRate < s.CapacityUnderusedRate {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationCapacity,
			Priority: domain.PriorityHigh,
			Title:    "Production capacity is underused",
			Description: fmt.Sprintf(
				"Only %.1f%% of the available %.0f hours were used (%.0f hours).",
				cu.UtilizationRate, cu.TotalCapacity, cu.UsedCapacity),
			Impact: "Labor cost is paid for hours that produce nothing",
			ActionItems: []string{
				"Bring forward orders from next month or take on additional work",
				"Reassign staff to maintenance, training or quality improvement",
				"Review staffing levels against forecast demand",
			},
			EstimatedBenefit: fmt.Sprintf("Up to %.0f productive hours recovered", cu.TotalCapacity*s.CapacityUnderusedRate/100-cu.UsedCapacity),
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "capacity",
			Metrics: map[string]float64{
				"utilizationRate": cu.UtilizationRate,
				"totalCapacity":   cu.TotalCapacity,
				"usedCapacity":    cu.UsedCapacity,
			},
		})
	}

	switch {
	case cu.UtilizationRate > s.CapacityOverloadedRate:
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationCapacity,
			Priority: domain.PriorityCritical,
			Title:    "Production capacity exceeded",
			Description: fmt.Sprintf(
				"Consumed hours are %.1f%% of nominal capacity (%.0f of %.0f hours).",
				cu.UtilizationRate, cu.UsedCapacity, cu.TotalCapacity),
			Impact: "Sustained overtime raises costs, errors and staff fatigue",
			ActionItems: []string{
				"Plan additional shifts or temporary staff",
				"Outsource non-critical operations",
				"Renegotiate due dates for low-priority orders",
			},
			EstimatedBenefit: "Stable delivery times and lower overtime cost",
			Urgency:          urgency(domain.PriorityCritical),
			AffectedArea:     "capacity",
			Metrics: map[string]float64{
				"utilizationRate": cu.UtilizationRate,
				"overloadHours":   cu.UsedCapacity - cu.TotalCapacity,
			},
		})
	case cu.UtilizationRate > s.CapacityNearFullRate:
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationCapacity,
			Priority: domain.PriorityHigh,
			Title:    "Capacity close to its limit",
			Description: fmt.Sprintf(
				"Utilization is %.1f%%, leaving almost no room for urgent orders or breakdowns.",
				cu.UtilizationRate),
			Impact: "Any disruption will translate directly into late orders",
			ActionItems: []string{
				"Keep a capacity buffer for priority orders",
				"Prepare a contingency plan with overtime or subcontractors",
			},
			EstimatedBenefit: "Resilience against demand peaks",
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "capacity",
			Metrics: map[string]float64{
				"utilizationRate": cu.UtilizationRate,
			},
		})
	}

	return recs
}

func (e *engine) costRules(m domain.EfficiencyMetrics, _ domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	s := e.settings
	cpu := m.CostPerUnit
	trend := cpu.Trend.Percent()

	switch {
	case cpu.Status == domain.StatusCritical || trend > s.CostCriticalTrend:
		return []domain.Recommendation{{
			Type:     domain.RecommendationCost,
			Priority: domain.PriorityCritical,
			Title:    "Cost per unit rising sharply",
			Description: fmt.Sprintf(
				"Cost per unit is %.2f, %s compared with the previous month.",
				cpu.CostPerUnit, cpu.Trend),
			Impact: "Margins shrink on every unit sold",
			ActionItems: []string{
				"Audit the largest purchases of the month",
				"Renegotiate prices or consolidate orders with key suppliers",
				"Look for waste and scrap driving material consumption",
				"Review whether output fell while fixed purchases stayed flat",
			},
			EstimatedBenefit: fmt.Sprintf("Returning to last month's cost saves about %.2f per unit", cpu.CostPerUnit-cpu.CostPerUnit/(1+trend/100)),
			Urgency:          urgency(domain.PriorityCritical),
			AffectedArea:     "cost",
			Metrics: map[string]float64{
				"costPerUnit":   cpu.CostPerUnit,
				"totalCost":     cpu.TotalCost,
				"unitsProduced": cpu.UnitsProduced,
				"trend":         trend,
			},
		}}
	case cpu.Status == domain.StatusWarning || trend > s.CostHighTrend:
		return []domain.Recommendation{{
			Type:     domain.RecommendationCost,
			Priority: domain.PriorityHigh,
			Title:    "Cost per unit increasing",
			Description: fmt.Sprintf(
				"Cost per unit is %.2f, %s compared with the previous month.",
				cpu.CostPerUnit, cpu.Trend),
			Impact: "Gradual erosion of margins",
			ActionItems: []string{
				"Compare supplier prices against previous purchases",
				"Track material consumption per order",
				"Review purchase quantities against production needs",
			},
			EstimatedBenefit: "Cost per unit held at last month's level",
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "cost",
			Metrics: map[string]float64{
				"costPerUnit": cpu.CostPerUnit,
				"trend":       trend,
			},
		}}
	}

	return nil
}

func (e *engine) leadTimeRules(m domain.EfficiencyMetrics, _ domain.BottleneckAnalysis, _ []domain.InventoryItem) []domain.Recommendation {
	s := e.settings
	lt := m.LeadTime

	switch {
	case lt.Status == domain.StatusCritical || lt.AverageLeadTime > s.LeadTimeCriticalDays:
		return []domain.Recommendation{{
			Type:     domain.RecommendationLeadTime,
			Priority: domain.PriorityCritical,
			Title:    "Lead time too long",
			Description: fmt.Sprintf(
				"Orders take %.1f days on average from start to completion (min %.1f, max %.1f).",
				lt.AverageLeadTime, lt.MinLeadTime, lt.MaxLeadTime),
			Impact: "Customers wait longer and work in progress ties up capital",
			ActionItems: []string{
				"Map the value stream of a typical order to locate waiting time",
				"Limit work in progress on the slowest stages",
				"Prioritize orders by due date instead of arrival",
			},
			EstimatedBenefit: fmt.Sprintf("Reduce lead time by %.1f days to reach %.0f days", lt.AverageLeadTime-s.LeadTimeHighDays, s.LeadTimeHighDays),
			Urgency:          urgency(domain.PriorityCritical),
			AffectedArea:     "lead_time",
			Metrics: map[string]float64{
				"averageLeadTime": lt.AverageLeadTime,
				"maxLeadTime":     lt.MaxLeadTime,
			},
		}}
	case lt.Status == domain.StatusWarning || lt.AverageLeadTime > s.LeadTimeHighDays:
		return []domain.Recommendation{{
			Type:     domain.RecommendationLeadTime,
			Priority: domain.PriorityHigh,
			Title:    "Reduce lead time",
			Description: fmt.Sprintf(
				"Average lead time is %.1f days.", lt.AverageLeadTime),
			Impact: "Less flexibility to respond to customer demand",
			ActionItems: []string{
				"Review handoffs between stages",
				"Reduce batch sizes to speed up flow",
			},
			EstimatedBenefit: "Shorter delivery promises and lower work in progress",
			Urgency:          urgency(domain.PriorityHigh),
			AffectedArea:     "lead_time",
			Metrics: map[string]float64{
				"averageLeadTime": lt.AverageLeadTime,
			},
		}}
	}

	return nil
}
