package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BusinessOrders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.OrderReport], error) {
	args := m.Called(ctx, salesmanID, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.OrderReport]), args.Error(1)
}

func (m *MockReportService) BusinessAllOrders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error) {
	args := m.Called(ctx, salesmanID, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Order]), args.Error(1)
}

func (m *MockReportService) Targets(ctx context.Context, f repository.TargetReportFilter) ([]model.TargetReportRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TargetReportRow), args.Error(1)
}

func (m *MockReportService) Followups(ctx context.Context, f repository.FollowupReportFilter) ([]model.FollowupReportRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FollowupReportRow), args.Error(1)
}

func (m *MockReportService) Salesmen(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.Salesman], error) {
	args := m.Called(ctx, keyword, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Salesman]), args.Error(1)
}

func (m *MockReportService) SalesmanOrders(ctx context.Context, f repository.SalesmanOrderFilter, p pagination.Params) (*pagination.Page[model.SalesmanOrder], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.SalesmanOrder]), args.Error(1)
}

func (m *MockReportService) AssignedBusinesses(ctx context.Context, f repository.AssignedFilter, p pagination.Params) (*pagination.Page[model.AssignedBusiness], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.AssignedBusiness]), args.Error(1)
}

func (m *MockReportService) CrossParts(ctx context.Context, partNumber string, supID string, sort query.Direction, p pagination.Params) (*pagination.Page[model.CrossPart], error) {
	args := m.Called(ctx, partNumber, supID, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.CrossPart]), args.Error(1)
}

func (m *MockReportService) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Supplier), args.Error(1)
}

func (m *MockReportService) InactiveBusinesses(ctx context.Context) ([]model.InactiveBusiness, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InactiveBusiness), args.Error(1)
}
