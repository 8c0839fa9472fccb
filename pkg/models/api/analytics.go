package api

import "time"

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type Period struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Label    string    `json:"label"`
	Previous Window    `json:"previous"`
}

type ProductionEfficiency struct {
	PlannedUnits   float64 `json:"plannedUnits"`
	ProducedUnits  float64 `json:"producedUnits"`
	EfficiencyRate float64 `json:"efficiencyRate"`
	Trend          string  `json:"trend"`
	Status         string  `json:"status"`
}

type CapacityUtilization struct {
	TotalCapacity   float64 `json:"totalCapacity"`
	UsedCapacity    float64 `json:"usedCapacity"`
	UtilizationRate float64 `json:"utilizationRate"`
	Trend           string  `json:"trend"`
	Status          string  `json:"status"`
}

type CostPerUnit struct {
	TotalCost     float64 `json:"totalCost"`
	UnitsProduced float64 `json:"unitsProduced"`
	CostPerUnit   float64 `json:"costPerUnit"`
	Trend         string  `json:"trend"`
	Status        string  `json:"status"`
}

type LeadTime struct {
	AverageLeadTime float64 `json:"averageLeadTime"`
	MinLeadTime     float64 `json:"minLeadTime"`
	MaxLeadTime     float64 `json:"maxLeadTime"`
	Trend           string  `json:"trend"`
	Status          string  `json:"status"`
}

type EfficiencyMetrics struct {
	Period               string               `json:"period"`
	ProductionEfficiency ProductionEfficiency `json:"productionEfficiency"`
	CapacityUtilization  CapacityUtilization  `json:"capacityUtilization"`
	CostPerUnit          CostPerUnit          `json:"costPerUnit"`
	LeadTime             LeadTime             `json:"leadTime"`
}

type SlowStage struct {
	StageName       string  `json:"stageName"`
	AverageDuration float64 `json:"averageDuration"`
	OrdersCount     int     `json:"ordersCount"`
	ImpactLevel     string  `json:"impactLevel"`
	Suggestion      string  `json:"suggestion"`
}

type ProblematicProduct struct {
	ProductID     string   `json:"productId"`
	ProductName   string   `json:"productName"`
	AverageDelay  float64  `json:"averageDelay"`
	DelayedOrders int      `json:"delayedOrders"`
	TotalOrders   int      `json:"totalOrders"`
	DelayRate     float64  `json:"delayRate"`
	ImpactLevel   string   `json:"impactLevel"`
	Issues        []string `json:"issues"`
}

type SlowSupplier struct {
	SupplierID           string  `json:"supplierId"`
	SupplierName         string  `json:"supplierName"`
	AverageDeliveryTime  float64 `json:"averageDeliveryTime"`
	ExpectedDeliveryTime float64 `json:"expectedDeliveryTime"`
	DelayDays            float64 `json:"delayDays"`
	OrdersCount          int     `json:"ordersCount"`
	ImpactLevel          string  `json:"impactLevel"`
	Reliability          float64 `json:"reliability"`
}

type BottleneckSummary struct {
	TotalBottlenecks int    `json:"totalBottlenecks"`
	CriticalIssues   int    `json:"criticalIssues"`
	EstimatedImpact  string `json:"estimatedImpact"`
}

type BottleneckAnalysis struct {
	Period              string               `json:"period"`
	SlowStages          []SlowStage          `json:"slowStages"`
	ProblematicProducts []ProblematicProduct `json:"problematicProducts"`
	SlowSuppliers       []SlowSupplier       `json:"slowSuppliers"`
	Summary             BottleneckSummary    `json:"summary"`
}

type Recommendation struct {
	ID               string             `json:"id"`
	Type             string             `json:"type"`
	Priority         string             `json:"priority"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Impact           string             `json:"impact"`
	ActionItems      []string           `json:"actionItems"`
	EstimatedBenefit string             `json:"estimatedBenefit"`
	Urgency          string             `json:"urgency"`
	AffectedArea     string             `json:"affectedArea"`
	Metrics          map[string]float64 `json:"metrics,omitempty"`
}

type RecommendationSummary struct {
	TotalRecommendations int    `json:"totalRecommendations"`
	CriticalCount        int    `json:"criticalCount"`
	HighPriorityCount    int    `json:"highPriorityCount"`
	EstimatedImpact      string `json:"estimatedImpact"`
}

type RecommendationReport struct {
	Period          string                `json:"period"`
	Recommendations []Recommendation      `json:"recommendations"`
	Summary         RecommendationSummary `json:"summary"`
}

type OperationsReport struct {
	Period          Period               `json:"period"`
	Metrics         EfficiencyMetrics    `json:"metrics"`
	Bottlenecks     BottleneckAnalysis   `json:"bottlenecks"`
	Recommendations RecommendationReport `json:"recommendations"`
}

type Error struct {
	Error string `json:"error"`
}
