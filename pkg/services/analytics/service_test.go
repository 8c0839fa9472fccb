package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/factory-atlas/pkg/metrics"
	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/models/store"
	"github.com/de-tools/factory-atlas/pkg/services/period"
	"github.com/de-tools/factory-atlas/pkg/services/recommendation"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/de-tools/factory-atlas/pkg/store/repository/repositorytest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) Calculate(ctx context.Context, p domain.Period) (domain.EfficiencyMetrics, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.EfficiencyMetrics), args.Error(1)
}

type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) Detect(ctx context.Context, p domain.Period) (domain.BottleneckAnalysis, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.BottleneckAnalysis), args.Error(1)
}

var asOf = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func stableMetrics() domain.EfficiencyMetrics {
	return domain.EfficiencyMetrics{
		Period:               "2024-05",
		ProductionEfficiency: domain.ProductionEfficiency{EfficiencyRate: 96, Status: domain.StatusExcellent},
		CapacityUtilization:  domain.CapacityUtilization{UtilizationRate: 85, Status: domain.StatusExcellent},
		CostPerUnit:          domain.CostPerUnit{Status: domain.StatusGood},
		LeadTime:             domain.LeadTime{AverageLeadTime: 2, Status: domain.StatusExcellent},
	}
}

type deps struct {
	repo       *repositorytest.MockRepository
	calculator *mockCalculator
	detector   *mockDetector
	registry   *prometheus.Registry
}

func setupService() (Service, deps) {
	d := deps{
		repo:       new(repositorytest.MockRepository),
		calculator: new(mockCalculator),
		detector:   new(mockDetector),
		registry:   prometheus.NewRegistry(),
	}
	svc := NewService(
		d.repo,
		d.calculator,
		d.detector,
		recommendation.NewEngine(recommendation.DefaultSettings(), recommendation.SequentialIDs("rec")),
		metrics.New(d.registry),
	)
	return svc, d
}

func TestBuildReport(t *testing.T) {
	ctx := context.Background()
	p := period.Resolve(asOf)

	t.Run("runs the whole pipeline", func(t *testing.T) {
		svc, d := setupService()
		analysis := domain.BottleneckAnalysis{
			Period: "2024-05",
			SlowStages: []domain.SlowStage{
				{StageName: "assembly", AverageDuration: 11, OrdersCount: 6, ImpactLevel: domain.ImpactHigh, Suggestion: "Split the stage"},
			},
			ProblematicProducts: []domain.ProblematicProduct{},
			SlowSuppliers:       []domain.SlowSupplier{},
			Summary:             domain.BottleneckSummary{TotalBottlenecks: 1, CriticalIssues: 1},
		}
		d.calculator.On("Calculate", mock.Anything, p).Return(stableMetrics(), nil)
		d.detector.On("Detect", mock.Anything, p).Return(analysis, nil)
		d.repo.On("GetLowStockItems", mock.Anything).Return([]store.InventoryItem{
			{ID: "i1", Name: "Resin", Unit: "l", CurrentStock: 2, MinimumStock: 10},
		}, nil)

		report, err := svc.BuildReport(ctx, asOf)

		require.NoError(t, err)
		assert.Equal(t, p, report.Period)
		assert.Equal(t, "2024-05", report.Metrics.Period)
		assert.Equal(t, analysis, report.Bottlenecks)

		recs := report.Recommendations.Recommendations
		require.Len(t, recs, 2)
		assert.Equal(t, domain.RecommendationInventory, recs[0].Type)
		assert.Equal(t, domain.PriorityCritical, recs[0].Priority)
		assert.Equal(t, domain.RecommendationProcess, recs[1].Type)
		assert.Equal(t, "rec-001", recs[0].ID)

		d.calculator.AssertExpectations(t)
		d.detector.AssertExpectations(t)
		d.repo.AssertExpectations(t)

		count, err := testutil.GatherAndCount(d.registry, "factory_atlas_pipeline_stage_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("repository failure aborts the report", func(t *testing.T) {
		svc, d := setupService()
		d.calculator.On("Calculate", mock.Anything, p).
			Return(domain.EfficiencyMetrics{}, repository.Wrap("consumed hours", errors.New("connection refused")))
		d.detector.On("Detect", mock.Anything, p).Return(domain.BottleneckAnalysis{}, nil).Maybe()

		_, err := svc.BuildReport(ctx, asOf)

		require.Error(t, err)
		assert.True(t, repository.IsRepositoryError(err))
		assert.Contains(t, err.Error(), "analyze efficiency for 2024-05")
		d.repo.AssertNotCalled(t, "GetLowStockItems", mock.Anything)
	})

	t.Run("low stock failure aborts the report", func(t *testing.T) {
		svc, d := setupService()
		d.calculator.On("Calculate", mock.Anything, p).Return(stableMetrics(), nil)
		d.detector.On("Detect", mock.Anything, p).Return(domain.BottleneckAnalysis{}, nil)
		d.repo.On("GetLowStockItems", mock.Anything).
			Return(nil, repository.Wrap("low stock items", errors.New("timeout")))

		_, err := svc.BuildReport(ctx, asOf)

		require.Error(t, err)
		assert.True(t, repository.IsRepositoryError(err))
	})
}

func TestGenerateRecommendations_HealthyOperations(t *testing.T) {
	svc, d := setupService()
	d.repo.On("GetLowStockItems", mock.Anything).Return([]store.InventoryItem{}, nil)

	report, err := svc.GenerateRecommendations(context.Background(), stableMetrics(), domain.BottleneckAnalysis{})

	require.NoError(t, err)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, "2024-05", report.Period)
	assert.Equal(t, 0, report.Summary.CriticalCount)
}

func TestAnalyzeEfficiency_RecordsErrorOutcome(t *testing.T) {
	svc, d := setupService()
	p := period.Resolve(asOf)
	d.calculator.On("Calculate", mock.Anything, p).
		Return(domain.EfficiencyMetrics{}, repository.Wrap("production totals", errors.New("boom")))

	_, err := svc.AnalyzeEfficiency(context.Background(), p)

	require.Error(t, err)
	count, gatherErr := testutil.GatherAndCount(d.registry, "factory_atlas_pipeline_stage_duration_seconds")
	require.NoError(t, gatherErr)
	assert.Equal(t, 1, count)
}
