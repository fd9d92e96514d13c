package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type MockMasterService struct {
	mock.Mock
}

func (m *MockMasterService) SaveTarget(ctx context.Context, callerID int64, in model.TargetInput) (int64, error) {
	args := m.Called(ctx, callerID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMasterService) ListTargets(ctx context.Context, salesmanID *int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Target], error) {
	args := m.Called(ctx, salesmanID, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Target]), args.Error(1)
}

func (m *MockMasterService) GetTarget(ctx context.Context, targetID int64) (*model.Target, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Target), args.Error(1)
}

func (m *MockMasterService) DeleteTarget(ctx context.Context, targetID int64) error {
	args := m.Called(ctx, targetID)
	return args.Error(0)
}

func (m *MockMasterService) SalesmanOptions(ctx context.Context) ([]model.SalesmanOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SalesmanOption), args.Error(1)
}

func (m *MockMasterService) SaveFollowup(ctx context.Context, in model.FollowupInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMasterService) ListFollowups(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.FollowupListItem], error) {
	args := m.Called(ctx, keyword, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.FollowupListItem]), args.Error(1)
}

func (m *MockMasterService) GetFollowup(ctx context.Context, followupID int64) (*model.Followup, error) {
	args := m.Called(ctx, followupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Followup), args.Error(1)
}

func (m *MockMasterService) DeleteFollowup(ctx context.Context, followupID int64) error {
	args := m.Called(ctx, followupID)
	return args.Error(0)
}

func (m *MockMasterService) SavePartRequest(ctx context.Context, callerID int64, in model.PartRequestInput) (int64, error) {
	args := m.Called(ctx, callerID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMasterService) ListPartRequests(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.PartRequest], error) {
	args := m.Called(ctx, keyword, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.PartRequest]), args.Error(1)
}

func (m *MockMasterService) GetPartRequest(ctx context.Context, requestID int64) (*model.PartRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PartRequest), args.Error(1)
}

func (m *MockMasterService) DeletePartRequest(ctx context.Context, requestID int64) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}
