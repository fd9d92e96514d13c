package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) Save(ctx context.Context, t *model.Target) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTargetRepository) List(ctx context.Context, salesmanID *int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Target], error) {
	args := m.Called(ctx, salesmanID, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Target]), args.Error(1)
}

func (m *MockTargetRepository) Get(ctx context.Context, targetID int64) (*model.Target, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Target), args.Error(1)
}

func (m *MockTargetRepository) Delete(ctx context.Context, targetID int64) (int64, error) {
	args := m.Called(ctx, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTargetRepository) Latest(ctx context.Context, salesmanID int64) (*model.Target, error) {
	args := m.Called(ctx, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Target), args.Error(1)
}

func (m *MockTargetRepository) BySalesman(ctx context.Context, salesmanID int64) ([]model.Target, error) {
	args := m.Called(ctx, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Target), args.Error(1)
}

func (m *MockTargetRepository) Report(ctx context.Context, f repository.TargetReportFilter) ([]model.TargetReportRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TargetReportRow), args.Error(1)
}

func (m *MockTargetRepository) Sum(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
