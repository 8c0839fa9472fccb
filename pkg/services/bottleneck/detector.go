package bottleneck

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/factory-atlas/pkg/calc"
	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/models/store"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Detector finds slow stages, problematic products and slow suppliers.
type Detector interface {
	Detect(ctx context.Context, p domain.Period) (domain.BottleneckAnalysis, error)
}

type detector struct {
	repo     repository.Repository
	settings Settings
}

func NewDetector(repo repository.Repository, settings Settings) Detector {
	return &detector{
		repo:     repo,
		settings: settings,
	}
}

// Detect looks at the current window only and runs the three detectors
// concurrently.
func (d *detector) Detect(ctx context.Context, p domain.Period) (domain.BottleneckAnalysis, error) {
	logger := zerolog.Ctx(ctx)
	started := time.Now()
	w := p.Current

	var (
		stages    []domain.SlowStage
		products  []domain.ProblematicProduct
		suppliers []domain.SlowSupplier
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := d.repo.GetStageDurations(gctx, w.Start, w.End)
		if err != nil {
			return fmt.Errorf("slow stages: %w", err)
		}
		stages = d.slowStages(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := d.repo.GetProductDelays(gctx, w.Start, w.End)
		if err != nil {
			return fmt.Errorf("problematic products: %w", err)
		}
		products = d.problematicProducts(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := d.repo.GetSupplierDeliveries(gctx, w.Start, w.End)
		if err != nil {
			return fmt.Errorf("slow suppliers: %w", err)
		}
		suppliers = d.slowSuppliers(rows)
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.BottleneckAnalysis{}, err
	}

	analysis := domain.BottleneckAnalysis{
		Period:              p.Label(),
		SlowStages:          stages,
		ProblematicProducts: products,
		SlowSuppliers:       suppliers,
		Summary:             d.summarize(stages, products, suppliers),
	}

	logger.Debug().
		Str("period", p.Label()).
		Int("slow_stages", len(stages)).
		Int("problematic_products", len(products)).
		Int("slow_suppliers", len(suppliers)).
		Dur("elapsed", time.Since(started)).
		Msg("bottlenecks detected")

	return analysis, nil
}

func (d *detector) slowStages(rows []store.StageDuration) []domain.SlowStage {
	cfg := d.settings.Stages
	stages := make([]domain.SlowStage, 0)

	for _, row := range rows {
		if row.OrdersCount < cfg.MinOrders || row.AverageDays <= cfg.SlowDays {
			continue
		}
		stages = append(stages, domain.SlowStage{
			StageName:       row.StageName,
			AverageDuration: calc.Round2(row.AverageDays),
			OrdersCount:     row.OrdersCount,
			ImpactLevel:     d.stageImpact(row),
			Suggestion:      d.stageSuggestion(row.AverageDays),
		})
	}

	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].AverageDuration != stages[j].AverageDuration {
			return stages[i].AverageDuration > stages[j].AverageDuration
		}
		return stages[i].OrdersCount > stages[j].OrdersCount
	})

	return truncate(stages, d.settings.MaxResults)
}

func (d *detector) stageImpact(row store.StageDuration) domain.ImpactLevel {
	cfg := d.settings.Stages
	switch {
	case row.AverageDays > cfg.HighImpactDays && row.OrdersCount > cfg.HighImpactOrders:
		return domain.ImpactHigh
	case row.AverageDays > cfg.MediumImpactDays || row.OrdersCount > cfg.MediumImpactOrders:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func (d *detector) stageSuggestion(days float64) string {
	cfg := d.settings.Stages
	switch {
	case days > cfg.CriticalSuggestionDays:
		return "Critical stage: review the process immediately and consider adding resources or parallel work cells"
	case days > cfg.LeanSuggestionDays:
		return "Apply lean techniques to remove waiting and rework from this stage"
	case days > cfg.MonitorSuggestionDays:
		return "Monitor this stage closely and look for optimization opportunities"
	default:
		return "Stage duration is within the normal range"
	}
}

func (d *detector) problematicProducts(rows []store.ProductDelay) []domain.ProblematicProduct {
	cfg := d.settings.Products
	products := make([]domain.ProblematicProduct, 0)

	for _, row := range rows {
		if row.TotalOrders < cfg.MinOrders || row.DelayedOrders < 1 {
			continue
		}
		delayRate := calc.Percent(float64(row.DelayedOrders), float64(row.TotalOrders))
		products = append(products, domain.ProblematicProduct{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			AverageDelay:  calc.Round2(row.AverageDelay),
			DelayedOrders: row.DelayedOrders,
			TotalOrders:   row.TotalOrders,
			DelayRate:     calc.Round2(delayRate),
			ImpactLevel:   d.productImpact(delayRate, row.AverageDelay),
			Issues:        d.productIssues(row, delayRate),
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].AverageDelay != products[j].AverageDelay {
			return products[i].AverageDelay > products[j].AverageDelay
		}
		return products[i].DelayedOrders > products[j].DelayedOrders
	})

	return truncate(products, d.settings.MaxResults)
}

func (d *detector) productImpact(delayRate, averageDelay float64) domain.ImpactLevel {
	cfg := d.settings.Products
	switch {
	case delayRate > cfg.HighImpactDelayRate && averageDelay > cfg.HighImpactDelayDays:
		return domain.ImpactHigh
	case delayRate > cfg.MediumImpactDelayRate || averageDelay > cfg.MediumImpactDelayDays:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func (d *detector) productIssues(row store.ProductDelay, delayRate float64) []string {
	cfg := d.settings.Products
	issues := make([]string, 0, 3)

	if delayRate > cfg.IssueDelayRate {
		issues = append(issues, fmt.Sprintf("High delay rate: %.1f%% of orders finished late", delayRate))
	}
	if row.AverageDelay > cfg.IssueDelayDays {
		issues = append(issues, fmt.Sprintf("Long average delay of %.1f days", row.AverageDelay))
	}
	if row.TotalOrders > cfg.IssueVolumeOrders && delayRate > cfg.IssueVolumeDelayRate {
		issues = append(issues, fmt.Sprintf("High-volume product (%d orders) with recurring delays", row.TotalOrders))
	}

	return issues
}

func (d *detector) slowSuppliers(rows []store.SupplierDelivery) []domain.SlowSupplier {
	cfg := d.settings.Suppliers
	suppliers := make([]domain.SlowSupplier, 0)

	for _, row := range rows {
		if row.OrdersCount < cfg.MinOrders {
			continue
		}
		delayDays := calc.NonNegative(row.AverageDeliveryDays - cfg.ExpectedDeliveryDays)
		reliability := calc.Percent(float64(row.OnTimeDeliveries()), float64(row.OrdersCount))
		if delayDays <= cfg.ReportDelayDays && reliability >= cfg.ReportReliability {
			continue
		}
		suppliers = append(suppliers, domain.SlowSupplier{
			SupplierID:           row.SupplierID,
			SupplierName:         row.SupplierName,
			AverageDeliveryTime:  calc.Round2(row.AverageDeliveryDays),
			ExpectedDeliveryTime: cfg.ExpectedDeliveryDays,
			DelayDays:            calc.Round2(delayDays),
			OrdersCount:          row.OrdersCount,
			ImpactLevel:          d.supplierImpact(delayDays, reliability),
			Reliability:          calc.Round2(reliability),
		})
	}

	sort.SliceStable(suppliers, func(i, j int) bool {
		return suppliers[i].AverageDeliveryTime > suppliers[j].AverageDeliveryTime
	})

	return truncate(suppliers, d.settings.MaxResults)
}

func (d *detector) supplierImpact(delayDays, reliability float64) domain.ImpactLevel {
	cfg := d.settings.Suppliers
	switch {
	case delayDays > cfg.HighImpactDelayDays && reliability < cfg.HighImpactReliability:
		return domain.ImpactHigh
	case delayDays > cfg.MediumImpactDelayDays || reliability < cfg.MediumImpactReliability:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func (d *detector) summarize(
	stages []domain.SlowStage,
	products []domain.ProblematicProduct,
	suppliers []domain.SlowSupplier,
) domain.BottleneckSummary {
	critical := 0
	for _, s := range stages {
		if s.ImpactLevel == domain.ImpactHigh {
			critical++
		}
	}
	for _, p := range products {
		if p.ImpactLevel == domain.ImpactHigh {
			critical++
		}
	}
	for _, s := range suppliers {
		if s.ImpactLevel == domain.ImpactHigh {
			critical++
		}
	}

	return domain.BottleneckSummary{
		TotalBottlenecks: len(stages) + len(products) + len(suppliers),
		CriticalIssues:   critical,
		EstimatedImpact:  d.impactNarrative(critical),
	}
}

func (d *detector) impactNarrative(criticalIssues int) string {
	switch {
	case criticalIssues >= d.settings.CriticalImpactIssues:
		return "Critical: several severe bottlenecks are disrupting operations and need immediate attention"
	case criticalIssues >= d.settings.HighImpactIssues:
		return "High: significant bottlenecks are limiting throughput and delivery performance"
	case criticalIssues >= d.settings.ModerateImpactIssues:
		return "Moderate: isolated bottlenecks need attention to avoid further delays"
	default:
		return "Low: no significant bottlenecks detected in this period"
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
