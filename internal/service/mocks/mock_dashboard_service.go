package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Data(ctx context.Context, salesmanID int64) (*model.DashboardData, error) {
	args := m.Called(ctx, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardData), args.Error(1)
}

func (m *MockDashboardService) IdleBusinesses(ctx context.Context, salesmanID int64, p pagination.Params) (*pagination.Page[model.IdleBusiness], error) {
	args := m.Called(ctx, salesmanID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.IdleBusiness]), args.Error(1)
}

func (m *MockDashboardService) MonthlySales(ctx context.Context, salesmanID int64, from string, to string) (*model.SalesChart, error) {
	args := m.Called(ctx, salesmanID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SalesChart), args.Error(1)
}

func (m *MockDashboardService) TargetChart(ctx context.Context, salesmanID int64) (*model.TargetChart, error) {
	args := m.Called(ctx, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TargetChart), args.Error(1)
}

func (m *MockDashboardService) DailySales(ctx context.Context, salesmanID int64, day string) (string, *model.DailySales, error) {
	args := m.Called(ctx, salesmanID, day)
	var r1 *model.DailySales
	if v := args.Get(1); v != nil {
		r1 = v.(*model.DailySales)
	}
	return args.Get(0).(string), r1, args.Error(2)
}

func (m *MockDashboardService) States(ctx context.Context, salesmanID int64) (*model.DashboardStates, error) {
	args := m.Called(ctx, salesmanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStates), args.Error(1)
}

func (m *MockDashboardService) TeamLeaderStates(ctx context.Context) (*model.TeamLeaderStates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamLeaderStates), args.Error(1)
}

func (m *MockDashboardService) TargetAchievement(ctx context.Context) (*model.TargetAchievementReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TargetAchievementReport), args.Error(1)
}

func (m *MockDashboardService) LastPartInquiries(ctx context.Context) ([]model.PartInquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PartInquiry), args.Error(1)
}

func (m *MockDashboardService) FollowTypeChart(ctx context.Context) (*model.FollowTypeChart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FollowTypeChart), args.Error(1)
}
