package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.BusinessDocument) (*model.BusinessDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDocument), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, documentID string) (*model.BusinessDocument, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListByBusiness(ctx context.Context, businessID int64) ([]model.BusinessDocument, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BusinessDocument), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}
