package domain

// Priority ranks a recommendation. Lower rank sorts first.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Rank returns the sort position of p. Unknown priorities sort last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

type RecommendationType string

const (
	RecommendationProduction RecommendationType = "production"
	RecommendationCapacity   RecommendationType = "capacity"
	RecommendationCost       RecommendationType = "cost"
	RecommendationLeadTime   RecommendationType = "lead_time"
	RecommendationProcess    RecommendationType = "process"
	RecommendationQuality    RecommendationType = "quality"
	RecommendationSupplier   RecommendationType = "supplier"
	RecommendationInventory  RecommendationType = "inventory"
)

type Recommendation struct {
	ID               string
	Type             RecommendationType
	Priority         Priority
	Title            string
	Description      string
	Impact           string
	ActionItems      []string
	EstimatedBenefit string
	Urgency          string
	AffectedArea     string
	Metrics          map[string]float64 // optional supporting figures
}

type RecommendationSummary struct {
	TotalRecommendations int
	CriticalCount        int
	HighPriorityCount    int
	EstimatedImpact      string
}

type RecommendationReport struct {
	Period          string
	Recommendations []Recommendation
	Summary         RecommendationSummary
}

// OperationsReport bundles the output of one full pipeline run.
type OperationsReport struct {
	Period          Period
	Metrics         EfficiencyMetrics
	Bottlenecks     BottleneckAnalysis
	Recommendations RecommendationReport
}
