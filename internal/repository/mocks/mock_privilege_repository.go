package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type MockPrivilegeRepository struct {
	mock.Mock
}

func (m *MockPrivilegeRepository) Catalog(ctx context.Context) ([]model.Privilege, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Privilege), args.Error(1)
}

func (m *MockPrivilegeRepository) List(ctx context.Context, sort query.Direction, p pagination.Params) (*pagination.Page[model.Privilege], error) {
	args := m.Called(ctx, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Privilege]), args.Error(1)
}

func (m *MockPrivilegeRepository) Save(ctx context.Context, pr *model.Privilege) (int64, error) {
	args := m.Called(ctx, pr)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPrivilegeRepository) ReplacePermissions(ctx context.Context, salesmanID int64, privilegeIDs []int64) error {
	args := m.Called(ctx, salesmanID, privilegeIDs)
	return args.Error(0)
}
