package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CrossParts(ctx context.Context, partNumber string, supID string, sort query.Direction, p pagination.Params) (*pagination.Page[model.CrossPart], error) {
	args := m.Called(ctx, partNumber, supID, sort, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page[model.CrossPart]), args.Error(1)
}

func (m *MockInventoryRepository) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Supplier), args.Error(1)
}
