// Package repositorytest provides a testify mock of repository.Repository.
package repositorytest

import (
	"context"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/store"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProductionTotals(ctx context.Context, start, end time.Time) (store.ProductionTotals, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(store.ProductionTotals), args.Error(1)
}

func (m *MockRepository) GetActiveStaffCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetConsumedHours(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRepository) GetPurchaseCost(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRepository) GetUnitsProduced(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRepository) GetLeadTimeStats(ctx context.Context, start, end time.Time) (store.LeadTimeStats, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(store.LeadTimeStats), args.Error(1)
}

func (m *MockRepository) GetStageDurations(ctx context.Context, start, end time.Time) ([]store.StageDuration, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.StageDuration), args.Error(1)
}

func (m *MockRepository) GetProductDelays(ctx context.Context, start, end time.Time) ([]store.ProductDelay, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.ProductDelay), args.Error(1)
}

func (m *MockRepository) GetSupplierDeliveries(ctx context.Context, start, end time.Time) ([]store.SupplierDelivery, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.SupplierDelivery), args.Error(1)
}

func (m *MockRepository) GetLowStockItems(ctx context.Context) ([]store.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.InventoryItem), args.Error(1)
}
