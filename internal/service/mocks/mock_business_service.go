package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) List(ctx context.Context, salesmanID int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Business], error) {
	args := m.Called(ctx, salesmanID, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Business]), args.Error(1)
}

func (m *MockBusinessService) Info(ctx context.Context, salesmanID int64, businessID int64) (*model.BusinessInfo, error) {
	args := m.Called(ctx, salesmanID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessInfo), args.Error(1)
}

func (m *MockBusinessService) Dashboard(ctx context.Context, salesmanID int64, businessID int64) (*model.BusinessDashboard, error) {
	args := m.Called(ctx, salesmanID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDashboard), args.Error(1)
}

func (m *MockBusinessService) Orders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error) {
	args := m.Called(ctx, salesmanID, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Order]), args.Error(1)
}

func (m *MockBusinessService) OrderInfo(ctx context.Context, salesmanID int64, orderID int64) (*model.OrderInfo, error) {
	args := m.Called(ctx, salesmanID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderInfo), args.Error(1)
}

func (m *MockBusinessService) StatusOptions() []model.StatusOption {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.StatusOption)
}
