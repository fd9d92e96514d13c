package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, in model.LoginInput) (*model.LoginResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockUserService) PrivilegeCatalog(ctx context.Context) ([]model.Privilege, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Privilege), args.Error(1)
}

func (m *MockUserService) UpdatePermissions(ctx context.Context, in model.PermissionsInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockUserService) SavePrivilege(ctx context.Context, in model.PrivilegeInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) ListPrivileges(ctx context.Context, sort query.Direction, p pagination.Params) (*pagination.Page[model.Privilege], error) {
	args := m.Called(ctx, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.Privilege]), args.Error(1)
}
