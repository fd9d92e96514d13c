package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/repository"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Order]), args.Error(1)
}

func (m *MockOrderRepository) ListWithItems(ctx context.Context, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.OrderWithItems], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.OrderWithItems]), args.Error(1)
}

func (m *MockOrderRepository) ListAcrossSalesmen(ctx context.Context, f repository.SalesmanOrderFilter, p pagination.Params) (*pagination.Page[model.SalesmanOrder], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.SalesmanOrder]), args.Error(1)
}

func (m *MockOrderRepository) Detail(ctx context.Context, orderID int64) (*model.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) Address(ctx context.Context, addressID int64) (*model.Address, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

func (m *MockOrderRepository) CountPending(ctx context.Context, businessIDs []int64) (int64, error) {
	args := m.Called(ctx, businessIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumGrandTotal(ctx context.Context, f repository.SalesFilter) (float64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) DailySeries(ctx context.Context, salesmanID int64, from string, to string) ([]model.SalesPoint, error) {
	args := m.Called(ctx, salesmanID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SalesPoint), args.Error(1)
}

func (m *MockOrderRepository) DailySales(ctx context.Context, businessIDs []int64, day string) (*model.DailySales, error) {
	args := m.Called(ctx, businessIDs, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailySales), args.Error(1)
}

func (m *MockOrderRepository) Totals(ctx context.Context, businessIDs []int64) (model.OrderTotals, error) {
	args := m.Called(ctx, businessIDs)
	return args.Get(0).(model.OrderTotals), args.Error(1)
}
