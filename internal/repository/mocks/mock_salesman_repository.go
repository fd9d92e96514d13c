package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type MockSalesmanRepository struct {
	mock.Mock
}

func (m *MockSalesmanRepository) Exists(ctx context.Context, salesmanID int64) (bool, error) {
	args := m.Called(ctx, salesmanID)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockSalesmanRepository) FindByID(ctx context.Context, salesmanID int64) (*model.Salesman, error) {
	args := m.Called(ctx, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Salesman), args.Error(1)
}

func (m *MockSalesmanRepository) FindByLoginID(ctx context.Context, loginID string) (*model.Salesman, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Salesman), args.Error(1)
}

func (m *MockSalesmanRepository) Options(ctx context.Context) ([]model.SalesmanOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SalesmanOption), args.Error(1)
}

func (m *MockSalesmanRepository) All(ctx context.Context) ([]model.Salesman, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Salesman), args.Error(1)
}

func (m *MockSalesmanRepository) List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.Salesman], error) {
	args := m.Called(ctx, keyword, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Salesman]), args.Error(1)
}

func (m *MockSalesmanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
