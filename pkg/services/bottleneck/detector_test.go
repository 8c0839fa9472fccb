package bottleneck

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/de-tools/factory-atlas/pkg/models/store"
	"github.com/de-tools/factory-atlas/pkg/services/period"
	"github.com/de-tools/factory-atlas/pkg/store/repository"
	"github.com/de-tools/factory-atlas/pkg/store/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPeriod = period.Resolve(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

func setupDetector(
	stages []store.StageDuration,
	products []store.ProductDelay,
	suppliers []store.SupplierDelivery,
) (Detector, *repositorytest.MockRepository) {
	w := testPeriod.Current
	repo := new(repositorytest.MockRepository)
	repo.On("GetStageDurations", mock.Anything, w.Start, w.End).Return(stages, nil)
	repo.On("GetProductDelays", mock.Anything, w.Start, w.End).Return(products, nil)
	repo.On("GetSupplierDeliveries", mock.Anything, w.Start, w.End).Return(suppliers, nil)
	return NewDetector(repo, DefaultSettings()), repo
}

func TestDetect_SlowStages(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies and filters stages", func(t *testing.T) {
		detector, repo := setupDetector([]store.StageDuration{
			{StageName: "assembly", OrdersCount: 8, AverageDays: 12},
			{StageName: "painting", OrdersCount: 4, AverageDays: 8},
			{StageName: "welding", OrdersCount: 3, AverageDays: 5.5},
			{StageName: "cutting", OrdersCount: 20, AverageDays: 2},
			{StageName: "packing", OrdersCount: 2, AverageDays: 30},
		}, nil, nil)

		analysis, err := detector.Detect(ctx, testPeriod)
		require.NoError(t, err)

		require.Len(t, analysis.SlowStages, 3)
		assert.Equal(t, "assembly", analysis.SlowStages[0].StageName)
		assert.Equal(t, domain.ImpactHigh, analysis.SlowStages[0].ImpactLevel)
		assert.Contains(t, analysis.SlowStages[0].Suggestion, "Critical")

		assert.Equal(t, "painting", analysis.SlowStages[1].StageName)
		assert.Equal(t, domain.ImpactMedium, analysis.SlowStages[1].ImpactLevel)
		assert.Contains(t, analysis.SlowStages[1].Suggestion, "lean")

		assert.Equal(t, "welding", analysis.SlowStages[2].StageName)
		assert.Contains(t, analysis.SlowStages[2].Suggestion, "Monitor")
		repo.AssertExpectations(t)
	})

	t.Run("stages under the sample floor never appear", func(t *testing.T) {
		detector, _ := setupDetector([]store.StageDuration{
			{StageName: "curing", OrdersCount: 2, AverageDays: 45},
			{StageName: "testing", OrdersCount: 1, AverageDays: 90},
		}, nil, nil)

		analysis, err := detector.Detect(ctx, testPeriod)
		require.NoError(t, err)

		assert.Empty(t, analysis.SlowStages)
	})

	t.Run("caps at ten stages ordered by duration", func(t *testing.T) {
		var rows []store.StageDuration
		for i := 0; i < 15; i++ {
			rows = append(rows, store.StageDuration{
				StageName:   fmt.Sprintf("stage-%02d", i),
				OrdersCount: 4,
				AverageDays: 6 + float64(i),
			})
		}
		detector, _ := setupDetector(rows, nil, nil)

		analysis, err := detector.Detect(ctx, testPeriod)
		require.NoError(t, err)

		require.Len(t, analysis.SlowStages, 10)
		assert.Equal(t, "stage-14", analysis.SlowStages[0].StageName)
		for i := 1; i < len(analysis.SlowStages); i++ {
			assert.GreaterOrEqual(t, analysis.SlowStages[i-1].AverageDuration, analysis.SlowStages[i].AverageDuration)
		}
	})
}

func TestDetect_ProblematicProducts(t *testing.T) {
	detector, _ := setupDetector(nil, []store.ProductDelay{
		{ProductID: "p1", ProductName: "Gearbox", TotalOrders: 12, DelayedOrders: 9, AverageDelay: 6.5},
		{ProductID: "p2", ProductName: "Shaft", TotalOrders: 5, DelayedOrders: 1, AverageDelay: 1},
		{ProductID: "p3", ProductName: "Bracket", TotalOrders: 4, DelayedOrders: 0, AverageDelay: 0},
		{ProductID: "p4", ProductName: "Housing", TotalOrders: 1, DelayedOrders: 1, AverageDelay: 20},
		{ProductID: "p5", ProductName: "Flange", TotalOrders: 4, DelayedOrders: 2, AverageDelay: 1},
		{ProductID: "p6", ProductName: "Valve", TotalOrders: 6, DelayedOrders: 3, AverageDelay: 1},
	}, nil)

	analysis, err := detector.Detect(context.Background(), testPeriod)
	require.NoError(t, err)

	products := analysis.ProblematicProducts
	require.Len(t, products, 4)

	gearbox := products[0]
	assert.Equal(t, "p1", gearbox.ProductID)
	assert.Equal(t, 75.0, gearbox.DelayRate)
	assert.Equal(t, domain.ImpactHigh, gearbox.ImpactLevel)
	assert.Len(t, gearbox.Issues, 3)

	// equal delay, more delayed orders first
	assert.Equal(t, "p6", products[1].ProductID)
	assert.Equal(t, domain.ImpactMedium, products[1].ImpactLevel)
	assert.Equal(t, "p5", products[2].ProductID)
	assert.Equal(t, "p2", products[3].ProductID)
	assert.Equal(t, domain.ImpactLow, products[3].ImpactLevel)
	assert.Empty(t, products[3].Issues)
}

func TestDetect_SlowSuppliers(t *testing.T) {
	detector, _ := setupDetector(nil, nil, []store.SupplierDelivery{
		{SupplierID: "s1", SupplierName: "Acme Steel", OrdersCount: 10, AverageDeliveryDays: 14, DelayedDeliveries: 6},
		{SupplierID: "s2", SupplierName: "Bolt Co", OrdersCount: 8, AverageDeliveryDays: 5.5, DelayedDeliveries: 0},
		{SupplierID: "s3", SupplierName: "Cast Ltd", OrdersCount: 5, AverageDeliveryDays: 9, DelayedDeliveries: 1},
		{SupplierID: "s4", SupplierName: "Die Works", OrdersCount: 1, AverageDeliveryDays: 40, DelayedDeliveries: 1},
		{SupplierID: "s5", SupplierName: "Edge Parts", OrdersCount: 4, AverageDeliveryDays: 4, DelayedDeliveries: 1},
	})

	analysis, err := detector.Detect(context.Background(), testPeriod)
	require.NoError(t, err)

	suppliers := analysis.SlowSuppliers
	require.Len(t, suppliers, 3)

	assert.Equal(t, "s1", suppliers[0].SupplierID)
	assert.Equal(t, 9.0, suppliers[0].DelayDays)
	assert.Equal(t, 40.0, suppliers[0].Reliability)
	assert.Equal(t, 5.0, suppliers[0].ExpectedDeliveryTime)
	assert.Equal(t, domain.ImpactHigh, suppliers[0].ImpactLevel)

	assert.Equal(t, "s3", suppliers[1].SupplierID)
	assert.Equal(t, 4.0, suppliers[1].DelayDays)
	assert.Equal(t, domain.ImpactMedium, suppliers[1].ImpactLevel)

	assert.Equal(t, "s5", suppliers[2].SupplierID)
	assert.Equal(t, 0.0, suppliers[2].DelayDays)
	assert.Equal(t, 75.0, suppliers[2].Reliability)
	assert.Equal(t, domain.ImpactMedium, suppliers[2].ImpactLevel)
}

func TestDetect_Summary(t *testing.T) {
	tests := []struct {
		name         string
		highStages   int
		wantCritical int
		wantImpact   string
	}{
		{name: "none", highStages: 0, wantCritical: 0, wantImpact: "Low"},
		{name: "one", highStages: 1, wantCritical: 1, wantImpact: "Moderate"},
		{name: "three", highStages: 3, wantCritical: 3, wantImpact: "High"},
		{name: "five", highStages: 5, wantCritical: 5, wantImpact: "Critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []store.StageDuration{{StageName: "monitor-only", OrdersCount: 3, AverageDays: 6}}
			for i := 0; i < tt.highStages; i++ {
				rows = append(rows, store.StageDuration{StageName: fmt.Sprintf("high-%d", i), OrdersCount: 6, AverageDays: 8})
			}
			detector, _ := setupDetector(rows, nil, nil)

			analysis, err := detector.Detect(context.Background(), testPeriod)
			require.NoError(t, err)

			assert.Equal(t, tt.highStages+1, analysis.Summary.TotalBottlenecks)
			assert.Equal(t, tt.wantCritical, analysis.Summary.CriticalIssues)
			assert.Contains(t, analysis.Summary.EstimatedImpact, tt.wantImpact)
			assert.Equal(t, "2024-05", analysis.Period)
		})
	}
}

func TestDetect_EmptyListsAreNotNil(t *testing.T) {
	detector, _ := setupDetector(nil, nil, nil)

	analysis, err := detector.Detect(context.Background(), testPeriod)
	require.NoError(t, err)

	assert.NotNil(t, analysis.SlowStages)
	assert.NotNil(t, analysis.ProblematicProducts)
	assert.NotNil(t, analysis.SlowSuppliers)
	assert.Equal(t, 0, analysis.Summary.TotalBottlenecks)
}

func TestDetect_RepositoryFailure(t *testing.T) {
	w := testPeriod.Current
	cause := &repository.Error{Op: "supplier deliveries", Err: errors.New("timeout")}

	repo := new(repositorytest.MockRepository)
	repo.On("GetStageDurations", mock.Anything, w.Start, w.End).Return([]store.StageDuration{}, nil).Maybe()
	repo.On("GetProductDelays", mock.Anything, w.Start, w.End).Return([]store.ProductDelay{}, nil).Maybe()
	repo.On("GetSupplierDeliveries", mock.Anything, w.Start, w.End).Return(nil, cause)

	analysis, err := NewDetector(repo, DefaultSettings()).Detect(context.Background(), testPeriod)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, analysis.SlowSuppliers)
	assert.Nil(t, analysis.SlowStages)
}
