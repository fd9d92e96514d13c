package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type MockPartRequestRepository struct {
	mock.Mock
}

func (m *MockPartRequestRepository) Save(ctx context.Context, r *model.PartRequest) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartRequestRepository) List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.PartRequest], error) {
	args := m.Called(ctx, keyword, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.PartRequest]), args.Error(1)
}

func (m *MockPartRequestRepository) Get(ctx context.Context, requestID int64) (*model.PartRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PartRequest), args.Error(1)
}

func (m *MockPartRequestRepository) Delete(ctx context.Context, requestID int64) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartRequestRepository) Latest(ctx context.Context, n int) ([]model.PartInquiry, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PartInquiry), args.Error(1)
}
