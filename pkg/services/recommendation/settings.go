package recommendation

// Settings contains the thresholds used by the recommendation rules
type Settings struct {
	// Production efficiency rate (percent) below which recommendations are raised (default: 70 critical, 85 high)
	EfficiencyCriticalRate float64
	EfficiencyHighRate     float64
	// EfficiencyDeclineTrend is the drop in percent that triggers a decline warning (default: 10)
	EfficiencyDeclineTrend float64

	// Capacity utilization bounds in percent (default: under 60, over 100, near full above 95)
	CapacityUnderusedRate  float64
	CapacityOverloadedRate float64
	CapacityNearFullRate   float64

	// Cost-per-unit trend in percent (default: 15 critical, 5 high)
	CostCriticalTrend float64
	CostHighTrend     float64

	// Average lead time in days (default: 10 critical, 7 high)
	LeadTimeCriticalDays float64
	LeadTimeHighDays     float64

	// Bottleneck recommendation caps (default: 3 products, 3 suppliers)
	MaxProductRecommendations  int
	MaxSupplierRecommendations int
	// SupplierReliabilityFloor is the reliability (percent) under which a
	// supplier without high impact still gets a recommendation (default: 80)
	SupplierReliabilityFloor float64

	// NearMinimumFactor marks stock within this factor of its minimum (default: 1.2)
	NearMinimumFactor float64
	// MaxNearMinimumItems is how many near-minimum items are named (default: 5)
	MaxNearMinimumItems int

	// Summary narrative thresholds (default: 3 critical immediate; 1 critical or 5 high priority; 2 high improvement)
	ImmediateCriticalCount int
	PriorityCriticalCount  int
	PriorityHighCount      int
	ImprovementHighCount   int
}

// DefaultSettings returns the default recommendation thresholds
func DefaultSettings() Settings {
	return Settings{
		EfficiencyCriticalRate:     70,
		EfficiencyHighRate:         85,
		EfficiencyDeclineTrend:     10,
		CapacityUnderusedRate:      60,
		CapacityOverloadedRate:     100,
		CapacityNearFullRate:       95,
		CostCriticalTrend:          15,
		CostHighTrend:              5,
		LeadTimeCriticalDays:       10,
		LeadTimeHighDays:           7,
		MaxProductRecommendations:  3,
		MaxSupplierRecommendations: 3,
		SupplierReliabilityFloor:   80,
		NearMinimumFactor:          1.2,
		MaxNearMinimumItems:        5,
		ImmediateCriticalCount:     3,
		PriorityCriticalCount:      1,
		PriorityHighCount:          5,
		ImprovementHighCount:       2,
	}
}
