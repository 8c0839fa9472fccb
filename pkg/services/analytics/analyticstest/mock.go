// Package analyticstest provides a testify mock of analytics.Service.
package analyticstest

import (
	"context"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) AnalyzeEfficiency(ctx context.Context, p domain.Period) (domain.EfficiencyMetrics, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.EfficiencyMetrics), args.Error(1)
}

func (m *MockService) DetectBottlenecks(ctx context.Context, p domain.Period) (domain.BottleneckAnalysis, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.BottleneckAnalysis), args.Error(1)
}

func (m *MockService) GenerateRecommendations(
	ctx context.Context,
	metrics domain.EfficiencyMetrics,
	bottlenecks domain.BottleneckAnalysis,
) (domain.RecommendationReport, error) {
	args := m.Called(ctx, metrics, bottlenecks)
	return args.Get(0).(domain.RecommendationReport), args.Error(1)
}

func (m *MockService) BuildReport(ctx context.Context, asOf time.Time) (domain.OperationsReport, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(domain.OperationsReport), args.Error(1)
}
