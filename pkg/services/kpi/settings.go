package kpi

import "github.com/de-tools/factory-atlas/pkg/models/domain"

// FloorThresholds classify a value where higher is better: the value must be
// at least the given bound to reach that status.
type FloorThresholds struct {
	Excellent float64
	Good      float64
	Warning   float64
}

func (t FloorThresholds) Classify(v float64) domain.Status {
	switch {
	case v >= t.Excellent:
		return domain.StatusExcellent
	case v >= t.Good:
		return domain.StatusGood
	case v >= t.Warning:
		return domain.StatusWarning
	default:
		return domain.StatusCritical
	}
}

// CeilingThresholds classify a value where lower is better: the value must be
// at most the given bound to reach that status.
type CeilingThresholds struct {
	Excellent float64
	Good      float64
	Warning   float64
}

func (t CeilingThresholds) Classify(v float64) domain.Status {
	switch {
	case v <= t.Excellent:
		return domain.StatusExcellent
	case v <= t.Good:
		return domain.StatusGood
	case v <= t.Warning:
		return domain.StatusWarning
	default:
		return domain.StatusCritical
	}
}

// BandThresholds classify utilisation, where both under- and over-use are bad.
type BandThresholds struct {
	// ExcellentMin and ExcellentMax bound the excellent band, both inclusive.
	ExcellentMin float64
	ExcellentMax float64
	// GoodMin is inclusive, GoodMax exclusive.
	GoodMin float64
	GoodMax float64
	// WarningMin is the lowest acceptable utilisation. Anything over GoodMax
	// that is not excellent is a warning as well.
	WarningMin float64
}

func (t BandThresholds) Classify(v float64) domain.Status {
	switch {
	case v >= t.ExcellentMin && v <= t.ExcellentMax:
		return domain.StatusExcellent
	case v >= t.GoodMin && v < t.GoodMax:
		return domain.StatusGood
	case v >= t.WarningMin || v > t.GoodMax:
		return domain.StatusWarning
	default:
		return domain.StatusCritical
	}
}

// Settings contains the thresholds used by the KPI calculator
type Settings struct {
	// Efficiency classifies the production efficiency rate in percent (default: 95/85/70)
	Efficiency FloorThresholds
	// Capacity classifies the capacity utilization rate in percent (default: 80-95, 70-100, 50)
	Capacity BandThresholds
	// CostTrend classifies the cost-per-unit trend in percent (default: -5/0/10)
	CostTrend CeilingThresholds
	// LeadTime classifies the average lead time in days (default: 3/5/7)
	LeadTime CeilingThresholds
	// WorkingDayRatio is the share of calendar days that are working days (default: 0.71, ~22 per month)
	WorkingDayRatio float64
	// HoursPerWorkingDay is the shift length per employee (default: 8)
	HoursPerWorkingDay float64
}

// DefaultSettings returns the default KPI thresholds
func DefaultSettings() Settings {
	return Settings{
		Efficiency: FloorThresholds{Excellent: 95, Good: 85, Warning: 70},
		Capacity: BandThresholds{
			ExcellentMin: 80,
			ExcellentMax: 95,
			GoodMin:      70,
			GoodMax:      100,
			WarningMin:   50,
		},
		CostTrend:          CeilingThresholds{Excellent: -5, Good: 0, Warning: 10},
		LeadTime:           CeilingThresholds{Excellent: 3, Good: 5, Warning: 7},
		WorkingDayRatio:    0.71,
		HoursPerWorkingDay: 8,
	}
}
