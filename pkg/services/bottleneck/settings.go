package bottleneck

// StageSettings contains thresholds for slow stage detection
type StageSettings struct {
	// MinOrders is the sample size below which a stage is ignored (default: 3)
	MinOrders int
	// SlowDays is the average duration a stage must exceed to be reported (default: 5)
	SlowDays float64
	// HighImpactDays and HighImpactOrders must both be exceeded for high impact (default: 7, 5)
	HighImpactDays   float64
	HighImpactOrders int
	// MediumImpactDays or MediumImpactOrders must be exceeded for medium impact (default: 5, 10)
	MediumImpactDays   float64
	MediumImpactOrders int
	// Suggestion bands in days (default: 10 critical, 7 lean, 5 monitor)
	CriticalSuggestionDays float64
	LeanSuggestionDays     float64
	MonitorSuggestionDays  float64
}

// ProductSettings contains thresholds for problematic product detection
type ProductSettings struct {
	// MinOrders is the sample size below which a product is ignored (default: 2)
	MinOrders int
	// HighImpactDelayRate (percent) and HighImpactDelayDays must both be exceeded (default: 60, 5)
	HighImpactDelayRate float64
	HighImpactDelayDays float64
	// MediumImpactDelayRate or MediumImpactDelayDays must be exceeded (default: 40, 3)
	MediumImpactDelayRate float64
	MediumImpactDelayDays float64
	// Issue checks (default: delay rate 50, average delay 5, 10 orders with delay rate 30)
	IssueDelayRate       float64
	IssueDelayDays       float64
	IssueVolumeOrders    int
	IssueVolumeDelayRate float64
}

// SupplierSettings contains thresholds for slow supplier detection
type SupplierSettings struct {
	// MinOrders is the sample size below which a supplier is ignored (default: 2)
	MinOrders int
	// ExpectedDeliveryDays is the agreed delivery time every supplier is measured against (default: 5)
	ExpectedDeliveryDays float64
	// HighImpactDelayDays must be exceeded and reliability be under HighImpactReliability (default: 7, 60)
	HighImpactDelayDays   float64
	HighImpactReliability float64
	// MediumImpactDelayDays exceeded or reliability under MediumImpactReliability (default: 3, 80)
	MediumImpactDelayDays   float64
	MediumImpactReliability float64
	// A supplier is reported when its delay exceeds ReportDelayDays or its
	// reliability is under ReportReliability (default: 1, 90)
	ReportDelayDays   float64
	ReportReliability float64
}

// Settings contains the thresholds used by the bottleneck detector
type Settings struct {
	Stages    StageSettings
	Products  ProductSettings
	Suppliers SupplierSettings
	// MaxResults caps each bottleneck list (default: 10)
	MaxResults int
	// Critical issue counts for the impact narrative (default: 5 critical, 3 high, 1 moderate)
	CriticalImpactIssues int
	HighImpactIssues     int
	ModerateImpactIssues int
}

// DefaultSettings returns the default bottleneck thresholds
func DefaultSettings() Settings {
	return Settings{
		Stages: StageSettings{
			MinOrders:              3,
			SlowDays:               5,
			HighImpactDays:         7,
			HighImpactOrders:       5,
			MediumImpactDays:       5,
			MediumImpactOrders:     10,
			CriticalSuggestionDays: 10,
			LeanSuggestionDays:     7,
			MonitorSuggestionDays:  5,
		},
		Products: ProductSettings{
			MinOrders:             2,
			HighImpactDelayRate:   60,
			HighImpactDelayDays:   5,
			MediumImpactDelayRate: 40,
			MediumImpactDelayDays: 3,
			IssueDelayRate:        50,
			IssueDelayDays:        5,
			IssueVolumeOrders:     10,
			IssueVolumeDelayRate:  30,
		},
		Suppliers: SupplierSettings{
			MinOrders:               2,
			ExpectedDeliveryDays:    5,
			HighImpactDelayDays:     7,
			HighImpactReliability:   60,
			MediumImpactDelayDays:   3,
			MediumImpactReliability: 80,
			ReportDelayDays:         1,
			ReportReliability:       90,
		},
		MaxResults:           10,
		CriticalImpactIssues: 5,
		HighImpactIssues:     3,
		ModerateImpactIssues: 1,
	}
}
