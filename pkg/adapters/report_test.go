package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeriod() domain.Period {
	return domain.Period{
		Current: domain.Window{
			Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			Label: "2024-02",
		},
		Previous: domain.Window{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
			Label: "2024-01",
		},
	}
}

func TestMapPeriodToReportPeriod(t *testing.T) {
	got := MapPeriodToReportPeriod(testPeriod())

	assert.Equal(t, "2024-02", got.Label)
	assert.Equal(t, 29, got.Duration)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got.Start)
}

func TestMapEfficiencyMetricsToReport(t *testing.T) {
	m := domain.EfficiencyMetrics{
		Period: "2024-02",
		ProductionEfficiency: domain.ProductionEfficiency{
			PlannedUnits: 100, ProducedUnits: 92, EfficiencyRate: 92,
			Trend: 2.5, Status: domain.StatusGood,
		},
		LeadTime: domain.LeadTime{AverageLeadTime: 4.5, Trend: -1, Status: domain.StatusExcellent},
	}

	report := MapEfficiencyMetricsToReport(testPeriod(), m)

	require.Len(t, report.Sections, 4)
	assert.Equal(t, "Efficiency metrics", report.Title)

	production := report.Sections[0]
	assert.Equal(t, "Production efficiency", production.Title)
	assert.Equal(t, "good", production.Summary["Status"])
	assert.Equal(t, "+2.5%", production.Summary["Trend"])
	require.Len(t, production.Details, 3)
	assert.Equal(t, 92.0, production.Details[1].Value)

	lead := report.Sections[3]
	assert.Equal(t, "-1.0%", lead.Summary["Trend"])
	assert.Equal(t, 4.5, lead.Details[0].Value)
}

func TestMapBottleneckAnalysisToReport(t *testing.T) {
	b := domain.BottleneckAnalysis{
		Period: "2024-02",
		SlowStages: []domain.SlowStage{
			{StageName: "painting", AverageDuration: 6, OrdersCount: 4, ImpactLevel: domain.ImpactHigh, Suggestion: "Add a shift"},
		},
		ProblematicProducts: []domain.ProblematicProduct{
			{ProductName: "Chair", DelayRate: 50, DelayedOrders: 2, TotalOrders: 4, AverageDelay: 3,
				ImpactLevel: domain.ImpactMedium, Issues: []string{"late", "rework"}},
		},
		Summary: domain.BottleneckSummary{TotalBottlenecks: 2, CriticalIssues: 1, EstimatedImpact: "medium"},
	}

	report := MapBottleneckAnalysisToReport(testPeriod(), b)

	require.Len(t, report.Sections, 4)
	assert.Equal(t, 2, report.Sections[0].Summary["Total bottlenecks"])
	require.Len(t, report.Sections[1].Details, 1)
	assert.Equal(t, "painting", report.Sections[1].Details[0].Name)
	assert.Equal(t, "high impact, 4 orders. Add a shift", report.Sections[1].Details[0].Description)
	assert.Equal(t, "medium impact, 2 of 4 orders late by 3.0 days. late; rework",
		report.Sections[2].Details[0].Description)
	assert.Empty(t, report.Sections[3].Details)
}

func TestMapOperationsReportToReport(t *testing.T) {
	r := domain.OperationsReport{
		Period: testPeriod(),
		Recommendations: domain.RecommendationReport{
			Recommendations: []domain.Recommendation{
				{Priority: domain.PriorityCritical, Title: "Restock", Urgency: "Immediate", Description: "Two items below minimum"},
			},
			Summary: domain.RecommendationSummary{TotalRecommendations: 1, CriticalCount: 1},
		},
	}

	report := MapOperationsReportToReport(r)

	assert.Equal(t, "Operations report", report.Title)
	assert.Equal(t, "2024-02", report.Period.Label)
	// 4 KPI sections, 4 bottleneck sections and the recommendations.
	require.Len(t, report.Sections, 9)

	recs := report.Sections[8]
	assert.Equal(t, "Recommendations", recs.Title)
	assert.Equal(t, 1, recs.Summary["Critical"])
	require.Len(t, recs.Details, 1)
	assert.Equal(t, "[critical] Restock", recs.Details[0].Name)
	assert.Equal(t, "Immediate", recs.Details[0].Value)
}
