package domain

import (
	"fmt"
	"math"
)

// Status classifies a KPI.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusWarning   Status = "warning"
	StatusCritical  Status = "critical"
)

// Trend is the signed percentage change of a KPI against the previous period.
type Trend float64

// String renders the trend with an explicit sign and one decimal, e.g. "+2.7%".
func (t Trend) String() string {
	v := math.Round(float64(t)*10) / 10
	if v >= 0 {
		return fmt.Sprintf("+%.1f%%", math.Abs(v))
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Percent returns the trend as a plain float.
func (t Trend) Percent() float64 {
	return float64(t)
}

type ProductionEfficiency struct {
	PlannedUnits   float64
	ProducedUnits  float64
	EfficiencyRate float64 // percent
	Trend          Trend
	Status         Status
}

type CapacityUtilization struct {
	TotalCapacity   float64 // hours
	UsedCapacity    float64 // hours
	UtilizationRate float64 // percent, may exceed 100
	Trend           Trend
	Status          Status
}

type CostPerUnit struct {
	TotalCost     float64
	UnitsProduced float64
	CostPerUnit   float64
	Trend         Trend
	Status        Status
}

type LeadTime struct {
	AverageLeadTime float64 // days
	MinLeadTime     float64
	MaxLeadTime     float64
	Trend           Trend
	Status          Status
}

// EfficiencyMetrics is the KPI set for one period.
type EfficiencyMetrics struct {
	Period               string
	ProductionEfficiency ProductionEfficiency
	CapacityUtilization  CapacityUtilization
	CostPerUnit          CostPerUnit
	LeadTime             LeadTime
}
