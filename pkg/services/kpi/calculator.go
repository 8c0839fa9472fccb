package kpi

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/factory-atlas/pkg/calc"
	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Calculator computes the efficiency KPIs of a period.
type Calculator interface {
	Calculate(ctx context.Context, p domain.Period) (domain.EfficiencyMetrics, error)
}

type calculator struct {
	repo     repository.Repository
	settings Settings
}

func NewCalculator(repo repository.Repository, settings Settings) Calculator {
	return &calculator{
		repo:     repo,
		settings: settings,
	}
}

// Calculate runs the four KPI computations concurrently. The first failing
// branch cancels the others and its error is returned; no partial set is
// ever produced.
func (c *calculator) Calculate(ctx context.Context, p domain.Period) (domain.EfficiencyMetrics, error) {
	logger := zerolog.Ctx(ctx)
	started := time.Now()

	var (
		efficiency domain.ProductionEfficiency
		capacity   domain.CapacityUtilization
		cost       domain.CostPerUnit
		leadTime   domain.LeadTime
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		efficiency, err = c.productionEfficiency(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		capacity, err = c.capacityUtilization(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		cost, err = c.costPerUnit(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		leadTime, err = c.leadTime(gctx, p)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.EfficiencyMetrics{}, err
	}

	logger.Debug().
		Str("period", p.Label()).
		Dur("elapsed", time.Since(started)).
		Msg("efficiency metrics calculated")

	return domain.EfficiencyMetrics{
		Period:               p.Label(),
		ProductionEfficiency: efficiency,
		CapacityUtilization:  capacity,
		CostPerUnit:          cost,
		LeadTime:             leadTime,
	}, nil
}

func (c *calculator) productionEfficiency(ctx context.Context, p domain.Period) (domain.ProductionEfficiency, error) {
	current, err := c.repo.GetProductionTotals(ctx, p.Current.Start, p.Current.End)
	if err != nil {
		return domain.ProductionEfficiency{}, fmt.Errorf("production efficiency: %w", err)
	}
	previous, err := c.repo.GetProductionTotals(ctx, p.Previous.Start, p.Previous.End)
	if err != nil {
		return domain.ProductionEfficiency{}, fmt.Errorf("production efficiency: %w", err)
	}

	planned := calc.NonNegative(current.PlannedUnits)
	produced := calc.NonNegative(current.ProducedUnits)
	rate := calc.Percent(produced, planned)
	previousRate := calc.Percent(calc.NonNegative(previous.ProducedUnits), calc.NonNegative(previous.PlannedUnits))

	return domain.ProductionEfficiency{
		PlannedUnits:   calc.Round2(planned),
		ProducedUnits:  calc.Round2(produced),
		EfficiencyRate: calc.Round2(rate),
		Trend:          domain.Trend(calc.Round2(calc.PercentChange(rate, previousRate))),
		Status:         c.settings.Efficiency.Classify(rate),
	}, nil
}

func (c *calculator) capacityUtilization(ctx context.Context, p domain.Period) (domain.CapacityUtilization, error) {
	staff, err := c.repo.GetActiveStaffCount(ctx)
	if err != nil {
		return domain.CapacityUtilization{}, fmt.Errorf("capacity utilization: %w", err)
	}
	used, err := c.repo.GetConsumedHours(ctx, p.Current.Start, p.Current.End)
	if err != nil {
		return domain.CapacityUtilization{}, fmt.Errorf("capacity utilization: %w", err)
	}
	previousUsed, err := c.repo.GetConsumedHours(ctx, p.Previous.Start, p.Previous.End)
	if err != nil {
		return domain.CapacityUtilization{}, fmt.Errorf("capacity utilization: %w", err)
	}

	total := c.capacityHours(staff, p.Current)
	used = calc.NonNegative(used)
	rate := calc.Percent(used, total)
	previousRate := calc.Percent(calc.NonNegative(previousUsed), c.capacityHours(staff, p.Previous))

	return domain.CapacityUtilization{
		TotalCapacity:   calc.Round2(total),
		UsedCapacity:    calc.Round2(used),
		UtilizationRate: calc.Round2(rate),
		Trend:           domain.Trend(calc.Round2(calc.PercentChange(rate, previousRate))),
		Status:          c.settings.Capacity.Classify(rate),
	}, nil
}

// capacityHours is the available staff time in the window.
func (c *calculator) capacityHours(staff int, w domain.Window) float64 {
	if staff <= 0 {
		return 0
	}
	workingDays := float64(w.DaysInMonth()) * c.settings.WorkingDayRatio
	return float64(staff) * workingDays * c.settings.HoursPerWorkingDay
}

func (c *calculator) costPerUnit(ctx context.Context, p domain.Period) (domain.CostPerUnit, error) {
	totalCost, units, err := c.costAndUnits(ctx, p.Current)
	if err != nil {
		return domain.CostPerUnit{}, fmt.Errorf("cost per unit: %w", err)
	}
	previousCost, previousUnits, err := c.costAndUnits(ctx, p.Previous)
	if err != nil {
		return domain.CostPerUnit{}, fmt.Errorf("cost per unit: %w", err)
	}

	perUnit := calc.SafeDiv(totalCost, units)
	trend := calc.PercentChange(perUnit, calc.SafeDiv(previousCost, previousUnits))

	// Lower is better, so the status follows the direction of the change.
	return domain.CostPerUnit{
		TotalCost:     calc.Round2(totalCost),
		UnitsProduced: calc.Round2(units),
		CostPerUnit:   calc.Round2(perUnit),
		Trend:         domain.Trend(calc.Round2(trend)),
		Status:        c.settings.CostTrend.Classify(trend),
	}, nil
}

func (c *calculator) costAndUnits(ctx context.Context, w domain.Window) (float64, float64, error) {
	cost, err := c.repo.GetPurchaseCost(ctx, w.Start, w.End)
	if err != nil {
		return 0, 0, err
	}
	units, err := c.repo.GetUnitsProduced(ctx, w.Start, w.End)
	if err != nil {
		return 0, 0, err
	}
	return calc.NonNegative(cost), calc.NonNegative(units), nil
}

func (c *calculator) leadTime(ctx context.Context, p domain.Period) (domain.LeadTime, error) {
	current, err := c.repo.GetLeadTimeStats(ctx, p.Current.Start, p.Current.End)
	if err != nil {
		return domain.LeadTime{}, fmt.Errorf("lead time: %w", err)
	}
	previous, err := c.repo.GetLeadTimeStats(ctx, p.Previous.Start, p.Previous.End)
	if err != nil {
		return domain.LeadTime{}, fmt.Errorf("lead time: %w", err)
	}

	average := calc.NonNegative(current.AverageDays)

	return domain.LeadTime{
		AverageLeadTime: calc.Round2(average),
		MinLeadTime:     calc.Round2(calc.NonNegative(current.MinDays)),
		MaxLeadTime:     calc.Round2(calc.NonNegative(current.MaxDays)),
		Trend:           domain.Trend(calc.Round2(calc.PercentChange(average, calc.NonNegative(previous.AverageDays)))),
		Status:          c.settings.LeadTime.Classify(average),
	}, nil
}
