package domain

type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

type SlowStage struct {
	StageName       string
	AverageDuration float64 // days
	OrdersCount     int
	ImpactLevel     ImpactLevel
	Suggestion      string
}

type ProblematicProduct struct {
	ProductID     string
	ProductName   string
	AverageDelay  float64 // days
	DelayedOrders int
	TotalOrders   int
	DelayRate     float64 // percent
	ImpactLevel   ImpactLevel
	Issues        []string
}

type SlowSupplier struct {
	SupplierID           string
	SupplierName         string
	AverageDeliveryTime  float64 // days
	ExpectedDeliveryTime float64 // days
	DelayDays            float64
	OrdersCount          int
	ImpactLevel          ImpactLevel
	Reliability          float64 // percent
}

type BottleneckSummary struct {
	TotalBottlenecks int
	CriticalIssues   int
	EstimatedImpact  string
}

type BottleneckAnalysis struct {
	Period              string
	SlowStages          []SlowStage
	ProblematicProducts []ProblematicProduct
	SlowSuppliers       []SlowSupplier
	Summary             BottleneckSummary
}
