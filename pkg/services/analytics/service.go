package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/factory-atlas/pkg/adapters"
	"github.com/de-tools/factory-atlas/pkg/metrics"
	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/services/bottleneck"
	"github.com/de-tools/factory-atlas/pkg/services/kpi"
	"github.com/de-tools/factory-atlas/pkg/services/period"
	"github.com/de-tools/factory-atlas/pkg/services/recommendation"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	stageEfficiency      = "efficiency"
	stageBottlenecks     = "bottlenecks"
	stageRecommendations = "recommendations"
	stageReport          = "report"
)

// Service runs the analytics pipeline over a repository.
type Service interface {
	AnalyzeEfficiency(ctx context.Context, p domain.Period) (domain.EfficiencyMetrics, error)
	DetectBottlenecks(ctx context.Context, p domain.Period) (domain.BottleneckAnalysis, error)
	GenerateRecommendations(
		ctx context.Context,
		metrics domain.EfficiencyMetrics,
		bottlenecks domain.BottleneckAnalysis,
	) (domain.RecommendationReport, error)
	BuildReport(ctx context.Context, asOf time.Time) (domain.OperationsReport, error)
}

type service struct {
	repo       repository.Repository
	calculator kpi.Calculator
	detector   bottleneck.Detector
	engine     recommendation.Engine
	metrics    *metrics.Metrics
}

func NewService(
	repo repository.Repository,
	calculator kpi.Calculator,
	detector bottleneck.Detector,
	engine recommendation.Engine,
	m *metrics.Metrics,
) Service {
	return &service{
		repo:       repo,
		calculator: calculator,
		detector:   detector,
		engine:     engine,
		metrics:    m,
	}
}

// NewDefaultService wires the pipeline components with their default settings.
func NewDefaultService(repo repository.Repository, m *metrics.Metrics) Service {
	return NewService(
		repo,
		kpi.NewCalculator(repo, kpi.DefaultSettings()),
		bottleneck.NewDetector(repo, bottleneck.DefaultSettings()),
		recommendation.NewEngine(recommendation.DefaultSettings(), recommendation.RandomIDs),
		m,
	)
}

func (s *service) AnalyzeEfficiency(ctx context.Context, p domain.Period) (_ domain.EfficiencyMetrics, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveStage(stageEfficiency, started, err) }()

	res, err := s.calculator.Calculate(ctx, p)
	if err != nil {
		return domain.EfficiencyMetrics{}, fmt.Errorf("analyze efficiency for %s: %w", p.Label(), err)
	}
	return res, nil
}

func (s *service) DetectBottlenecks(ctx context.Context, p domain.Period) (_ domain.BottleneckAnalysis, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveStage(stageBottlenecks, started, err) }()

	res, err := s.detector.Detect(ctx, p)
	if err != nil {
		return domain.BottleneckAnalysis{}, fmt.Errorf("detect bottlenecks for %s: %w", p.Label(), err)
	}
	return res, nil
}

func (s *service) GenerateRecommendations(
	ctx context.Context,
	m domain.EfficiencyMetrics,
	b domain.BottleneckAnalysis,
) (_ domain.RecommendationReport, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveStage(stageRecommendations, started, err) }()

	items, err := s.repo.GetLowStockItems(ctx)
	if err != nil {
		return domain.RecommendationReport{}, fmt.Errorf("generate recommendations for %s: %w", m.Period, err)
	}

	report := s.engine.Generate(m, b, adapters.MapStoreInventoryItemsToDomain(items))

	zerolog.Ctx(ctx).Debug().
		Str("period", m.Period).
		Int("low_stock_items", len(items)).
		Int("recommendations", report.Summary.TotalRecommendations).
		Msg("recommendations generated")

	return report, nil
}

// BuildReport resolves the period of asOf, computes the KPIs and bottlenecks
// concurrently and derives the recommendations from both.
func (s *service) BuildReport(ctx context.Context, asOf time.Time) (_ domain.OperationsReport, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveStage(stageReport, started, err) }()

	logger := zerolog.Ctx(ctx)
	p := period.Resolve(asOf)

	var (
		efficiency  domain.EfficiencyMetrics
		bottlenecks domain.BottleneckAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		efficiency, err = s.AnalyzeEfficiency(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		bottlenecks, err = s.DetectBottlenecks(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.OperationsReport{}, err
	}

	recommendations, err := s.GenerateRecommendations(ctx, efficiency, bottlenecks)
	if err != nil {
		return domain.OperationsReport{}, err
	}

	logger.Debug().
		Str("period", p.Label()).
		Int("bottlenecks", bottlenecks.Summary.TotalBottlenecks).
		Int("recommendations", recommendations.Summary.TotalRecommendations).
		Msg("operations report built")

	return domain.OperationsReport{
		Period:          p,
		Metrics:         efficiency,
		Bottlenecks:     bottlenecks,
		Recommendations: recommendations,
	}, nil
}
