package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) List(ctx context.Context, salesmanID int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Business], error) {
	args := m.Called(ctx, salesmanID, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Business]), args.Error(1)
}

func (m *MockBusinessRepository) Info(ctx context.Context, businessID int64, salesmanID int64) (*model.BusinessInfo, error) {
	args := m.Called(ctx, businessID, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessInfo), args.Error(1)
}

func (m *MockBusinessRepository) Owned(ctx context.Context, businessID int64, salesmanID int64) (bool, error) {
	args := m.Called(ctx, businessID, salesmanID)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockBusinessRepository) IDs(ctx context.Context, salesmanID int64, excludeDeleted bool) ([]int64, error) {
	args := m.Called(ctx, salesmanID, excludeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockBusinessRepository) Count(ctx context.Context, f repository.BusinessCountFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBusinessRepository) Metric(ctx context.Context, businessID int64, metric model.BusinessMetric) (float64, error) {
	args := m.Called(ctx, businessID, metric)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBusinessRepository) Idle(ctx context.Context, f repository.IdleFilter, p pagination.Params) (*pagination.Page[model.IdleBusiness], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.IdleBusiness]), args.Error(1)
}

func (m *MockBusinessRepository) Assigned(ctx context.Context, f repository.AssignedFilter, p pagination.Params) (*pagination.Page[model.AssignedBusiness], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.AssignedBusiness]), args.Error(1)
}

func (m *MockBusinessRepository) Inactive(ctx context.Context) ([]model.InactiveBusiness, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InactiveBusiness), args.Error(1)
}

func (m *MockBusinessRepository) AssignedSummary(ctx context.Context) ([]int64, int64, error) {
	args := m.Called(ctx)
	var r0 []int64
	if v := args.Get(0); v != nil {
		r0 = v.([]int64)
	}
	return r0, args.Get(1).(int64), args.Error(2)
}
