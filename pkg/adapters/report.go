package adapters

import (
	"fmt"
	"strings"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

func MapPeriodToReportPeriod(p domain.Period) domain.TimePeriod {
	return domain.TimePeriod{
		Start:    p.Current.Start,
		End:      p.Current.End,
		Label:    p.Current.Label,
		Duration: p.Current.DaysInMonth(),
	}
}

func MapEfficiencyMetricsToReport(p domain.Period, m domain.EfficiencyMetrics) *domain.Report {
	return &domain.Report{
		Title:    "Efficiency metrics",
		Period:   MapPeriodToReportPeriod(p),
		Sections: efficiencySections(m),
	}
}

func MapBottleneckAnalysisToReport(p domain.Period, b domain.BottleneckAnalysis) *domain.Report {
	return &domain.Report{
		Title:    "Bottleneck analysis",
		Period:   MapPeriodToReportPeriod(p),
		Sections: bottleneckSections(b),
	}
}

func MapRecommendationReportToReport(p domain.Period, r domain.RecommendationReport) *domain.Report {
	return &domain.Report{
		Title:    "Recommendations",
		Period:   MapPeriodToReportPeriod(p),
		Sections: []domain.ReportSection{recommendationSection(r)},
	}
}

func MapOperationsReportToReport(r domain.OperationsReport) *domain.Report {
	sections := efficiencySections(r.Metrics)
	sections = append(sections, bottleneckSections(r.Bottlenecks)...)
	sections = append(sections, recommendationSection(r.Recommendations))

	return &domain.Report{
		Title:    "Operations report",
		Period:   MapPeriodToReportPeriod(r.Period),
		Sections: sections,
	}
}

func kpiSummary(status domain.Status, trend domain.Trend) map[string]interface{} {
	return map[string]interface{}{
		"Status": string(status),
		"Trend":  trend.String(),
	}
}

func efficiencySections(m domain.EfficiencyMetrics) []domain.ReportSection {
	pe, cu, cpu, lt := m.ProductionEfficiency, m.CapacityUtilization, m.CostPerUnit, m.LeadTime
	return []domain.ReportSection{
		{
			Title:   "Production efficiency",
			Summary: kpiSummary(pe.Status, pe.Trend),
			Details: []domain.ReportDetail{
				{Name: "Planned units", Value: pe.PlannedUnits, Unit: "units", Description: "Orders due in the period"},
				{Name: "Produced units", Value: pe.ProducedUnits, Unit: "units", Description: "Output of those orders"},
				{Name: "Efficiency rate", Value: pe.EfficiencyRate, Unit: "%", Description: "Produced over planned"},
			},
		},
		{
			Title:   "Capacity utilization",
			Summary: kpiSummary(cu.Status, cu.Trend),
			Details: []domain.ReportDetail{
				{Name: "Total capacity", Value: cu.TotalCapacity, Unit: "hours", Description: "Active staff over working days"},
				{Name: "Used capacity", Value: cu.UsedCapacity, Unit: "hours", Description: "Hours booked on completed orders"},
				{Name: "Utilization rate", Value: cu.UtilizationRate, Unit: "%", Description: "Used over total"},
			},
		},
		{
			Title:   "Cost per unit",
			Summary: kpiSummary(cpu.Status, cpu.Trend),
			Details: []domain.ReportDetail{
				{Name: "Total cost", Value: cpu.TotalCost, Description: "Received purchases"},
				{Name: "Units produced", Value: cpu.UnitsProduced, Unit: "units", Description: "Completed orders"},
				{Name: "Cost per unit", Value: cpu.CostPerUnit, Description: "Total cost over units produced"},
			},
		},
		{
			Title:   "Lead time",
			Summary: kpiSummary(lt.Status, lt.Trend),
			Details: []domain.ReportDetail{
				{Name: "Average lead time", Value: lt.AverageLeadTime, Unit: "days", Description: "Start to completion"},
				{Name: "Shortest lead time", Value: lt.MinLeadTime, Unit: "days"},
				{Name: "Longest lead time", Value: lt.MaxLeadTime, Unit: "days"},
			},
		},
	}
}

func bottleneckSections(b domain.BottleneckAnalysis) []domain.ReportSection {
	stages := make([]domain.ReportDetail, 0, len(b.SlowStages))
	for _, s := range b.SlowStages {
		stages = append(stages, domain.ReportDetail{
			Name:        s.StageName,
			Value:       s.AverageDuration,
			Unit:        "days",
			Description: fmt.Sprintf("%s impact, %d orders. %s", s.ImpactLevel, s.OrdersCount, s.Suggestion),
		})
	}

	products := make([]domain.ReportDetail, 0, len(b.ProblematicProducts))
	for _, p := range b.ProblematicProducts {
		products = append(products, domain.ReportDetail{
			Name:  p.ProductName,
			Value: p.DelayRate,
			Unit:  "% late",
			Description: fmt.Sprintf("%s impact, %d of %d orders late by %.1f days. %s",
				p.ImpactLevel, p.DelayedOrders, p.TotalOrders, p.AverageDelay, strings.Join(p.Issues, "; ")),
		})
	}

	suppliers := make([]domain.ReportDetail, 0, len(b.SlowSuppliers))
	for _, s := range b.SlowSuppliers {
		suppliers = append(suppliers, domain.ReportDetail{
			Name:  s.SupplierName,
			Value: s.AverageDeliveryTime,
			Unit:  "days",
			Description: fmt.Sprintf("%s impact, %.1f days late, %.1f%% reliable over %d orders",
				s.ImpactLevel, s.DelayDays, s.Reliability, s.OrdersCount),
		})
	}

	return []domain.ReportSection{
		{
			Title: "Bottlenecks",
			Summary: map[string]interface{}{
				"Total bottlenecks": b.Summary.TotalBottlenecks,
				"Critical issues":   b.Summary.CriticalIssues,
				"Impact":            b.Summary.EstimatedImpact,
			},
		},
		{Title: "Slow stages", Details: stages},
		{Title: "Problematic products", Details: products},
		{Title: "Slow suppliers", Details: suppliers},
	}
}

func recommendationSection(r domain.RecommendationReport) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("[%s] %s", rec.Priority, rec.Title),
			Value:       rec.Urgency,
			Description: rec.Description,
		})
	}

	return domain.ReportSection{
		Title: "Recommendations",
		Summary: map[string]interface{}{
			"Total":         r.Summary.TotalRecommendations,
			"Critical":      r.Summary.CriticalCount,
			"High priority": r.Summary.HighPriorityCount,
			"Impact":        r.Summary.EstimatedImpact,
		},
		Details: details,
	}
}
