package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, salesmanID int64, up service.Upload) (*model.BusinessDocument, error) {
	args := m.Called(ctx, salesmanID, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessDocument), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, salesmanID int64, businessID int64) ([]model.BusinessDocument, error) {
	args := m.Called(ctx, salesmanID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BusinessDocument), args.Error(1)
}

func (m *MockDocumentService) Open(ctx context.Context, salesmanID int64, documentID string) (*model.BusinessDocument, io.ReadCloser, error) {
	args := m.Called(ctx, salesmanID, documentID)
	var r0 *model.BusinessDocument
	if v := args.Get(0); v != nil {
		r0 = v.(*model.BusinessDocument)
	}
	var r1 io.ReadCloser
	if v := args.Get(1); v != nil {
		r1 = v.(io.ReadCloser)
	}
	return r0, r1, args.Error(2)
}

func (m *MockDocumentService) Delete(ctx context.Context, salesmanID int64, documentID string) error {
	args := m.Called(ctx, salesmanID, documentID)
	return args.Error(0)
}
