package adapters

import (
	"maps"
	"slices"

	"github.com/de-tools/factory-atlas/pkg/models/api"
	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

func MapWindowDomainToApi(w domain.Window) api.Window {
	return api.Window{
		Start: w.Start,
		End:   w.End,
		Label: w.Label,
	}
}

func MapPeriodDomainToApi(p domain.Period) api.Period {
	return api.Period{
		Start:    p.Current.Start,
		End:      p.Current.End,
		Label:    p.Current.Label,
		Previous: MapWindowDomainToApi(p.Previous),
	}
}

func MapEfficiencyMetricsDomainToApi(m domain.EfficiencyMetrics) api.EfficiencyMetrics {
	pe, cu, cpu, lt := m.ProductionEfficiency, m.CapacityUtilization, m.CostPerUnit, m.LeadTime
	return api.EfficiencyMetrics{
		Period: m.Period,
		ProductionEfficiency: api.ProductionEfficiency{
			PlannedUnits:   pe.PlannedUnits,
			ProducedUnits:  pe.ProducedUnits,
			EfficiencyRate: pe.EfficiencyRate,
			Trend:          pe.Trend.String(),
			Status:         string(pe.Status),
		},
		CapacityUtilization: api.CapacityUtilization{
			TotalCapacity:   cu.TotalCapacity,
			UsedCapacity:    cu.UsedCapacity,
			UtilizationRate: cu.UtilizationRate,
			Trend:           cu.Trend.String(),
			Status:          string(cu.Status),
		},
		CostPerUnit: api.CostPerUnit{
			TotalCost:     cpu.TotalCost,
			UnitsProduced: cpu.UnitsProduced,
			CostPerUnit:   cpu.CostPerUnit,
			Trend:         cpu.Trend.String(),
			Status:        string(cpu.Status),
		},
		LeadTime: api.LeadTime{
			AverageLeadTime: lt.AverageLeadTime,
			MinLeadTime:     lt.MinLeadTime,
			MaxLeadTime:     lt.MaxLeadTime,
			Trend:           lt.Trend.String(),
			Status:          string(lt.Status),
		},
	}
}

func MapBottleneckAnalysisDomainToApi(b domain.BottleneckAnalysis) api.BottleneckAnalysis {
	res := api.BottleneckAnalysis{
		Period:              b.Period,
		SlowStages:          make([]api.SlowStage, 0, len(b.SlowStages)),
		ProblematicProducts: make([]api.ProblematicProduct, 0, len(b.ProblematicProducts)),
		SlowSuppliers:       make([]api.SlowSupplier, 0, len(b.SlowSuppliers)),
		Summary: api.BottleneckSummary{
			TotalBottlenecks: b.Summary.TotalBottlenecks,
			CriticalIssues:   b.Summary.CriticalIssues,
			EstimatedImpact:  b.Summary.EstimatedImpact,
		},
	}
	for _, s := range b.SlowStages {
		res.SlowStages = append(res.SlowStages, api.SlowStage{
			StageName:       s.StageName,
			AverageDuration: s.AverageDuration,
			OrdersCount:     s.OrdersCount,
			ImpactLevel:     string(s.ImpactLevel),
			Suggestion:      s.Suggestion,
		})
	}
	for _, p := range b.ProblematicProducts {
		issues := slices.Clone(p.Issues)
		if issues == nil {
			issues = []string{}
		}
		res.ProblematicProducts = append(res.ProblematicProducts, api.ProblematicProduct{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			AverageDelay:  p.AverageDelay,
			DelayedOrders: p.DelayedOrders,
			TotalOrders:   p.TotalOrders,
			DelayRate:     p.DelayRate,
			ImpactLevel:   string(p.ImpactLevel),
			Issues:        issues,
		})
	}
	for _, s := range b.SlowSuppliers {
		res.SlowSuppliers = append(res.SlowSuppliers, api.SlowSupplier{
			SupplierID:           s.SupplierID,
			SupplierName:         s.SupplierName,
			AverageDeliveryTime:  s.AverageDeliveryTime,
			ExpectedDeliveryTime: s.ExpectedDeliveryTime,
			DelayDays:            s.DelayDays,
			OrdersCount:          s.OrdersCount,
			ImpactLevel:          string(s.ImpactLevel),
			Reliability:          s.Reliability,
		})
	}
	return res
}

func MapRecommendationDomainToApi(r domain.Recommendation) api.Recommendation {
	actions := slices.Clone(r.ActionItems)
	if actions == nil {
		actions = []string{}
	}
	return api.Recommendation{
		ID:               r.ID,
		Type:             string(r.Type),
		Priority:         string(r.Priority),
		Title:            r.Title,
		Description:      r.Description,
		Impact:           r.Impact,
		ActionItems:      actions,
		EstimatedBenefit: r.EstimatedBenefit,
		Urgency:          r.Urgency,
		AffectedArea:     r.AffectedArea,
		Metrics:          maps.Clone(r.Metrics),
	}
}

func MapRecommendationReportDomainToApi(r domain.RecommendationReport) api.RecommendationReport {
	res := api.RecommendationReport{
		Period:          r.Period,
		Recommendations: make([]api.Recommendation, 0, len(r.Recommendations)),
		Summary: api.RecommendationSummary{
			TotalRecommendations: r.Summary.TotalRecommendations,
			CriticalCount:        r.Summary.CriticalCount,
			HighPriorityCount:    r.Summary.HighPriorityCount,
			EstimatedImpact:      r.Summary.EstimatedImpact,
		},
	}
	for _, rec := range r.Recommendations {
		res.Recommendations = append(res.Recommendations, MapRecommendationDomainToApi(rec))
	}
	return res
}

func MapOperationsReportDomainToApi(r domain.OperationsReport) api.OperationsReport {
	return api.OperationsReport{
		Period:          MapPeriodDomainToApi(r.Period),
		Metrics:         MapEfficiencyMetricsDomainToApi(r.Metrics),
		Bottlenecks:     MapBottleneckAnalysisDomainToApi(r.Bottlenecks),
		Recommendations: MapRecommendationReportDomainToApi(r.Recommendations),
	}
}
