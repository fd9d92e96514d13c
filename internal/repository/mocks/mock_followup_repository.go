package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

type MockFollowupRepository struct {
	mock.Mock
}

func (m *MockFollowupRepository) Save(ctx context.Context, f *model.Followup) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowupRepository) List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.FollowupListItem], error) {
	args := m.Called(ctx, keyword, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.FollowupListItem]), args.Error(1)
}

func (m *MockFollowupRepository) Get(ctx context.Context, followupID int64) (*model.Followup, error) {
	args := m.Called(ctx, followupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Followup), args.Error(1)
}

func (m *MockFollowupRepository) Delete(ctx context.Context, followupID int64) (int64, error) {
	args := m.Called(ctx, followupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowupRepository) Report(ctx context.Context, f repository.FollowupReportFilter) ([]model.FollowupReportRow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FollowupReportRow), args.Error(1)
}

func (m *MockFollowupRepository) TypeChart(ctx context.Context) (*model.FollowTypeChart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FollowTypeChart), args.Error(1)
}
