package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
	repoMocks "github.com/ghayaruae/crm-server/internal/repository/mocks"
)

type reportMocks struct {
	businesses *repoMocks.MockBusinessRepository
	orders     *repoMocks.MockOrderRepository
	salesmen   *repoMocks.MockSalesmanRepository
	inventory  *repoMocks.MockInventoryRepository
}

func newReportService() (ReportService, reportMocks) {
	m := reportMocks{
		businesses: new(repoMocks.MockBusinessRepository),
		orders:     new(repoMocks.MockOrderRepository),
		salesmen:   new(repoMocks.MockSalesmanRepository),
		inventory:  new(repoMocks.MockInventoryRepository),
	}
	svc := NewReportService(ReportRepos{
		Businesses: m.businesses,
		Orders:     m.orders,
		Salesmen:   m.salesmen,
		Targets:    new(repoMocks.MockTargetRepository),
		Followups:  new(repoMocks.MockFollowupRepository),
		Inventory:  m.inventory,
	}, "AED", zerolog.Nop())
	return svc, m
}

func TestCorrectedTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order model.OrderWithItems
		want  float64
	}{
		{
			name:  "no items",
			order: model.OrderWithItems{Order: model.Order{GrandTotal: 200}},
			want:  200,
		},
		{
			name: "returned item uses price times qty",
			order: model.OrderWithItems{
				Order: model.Order{GrandTotal: 200},
				Items: []model.OrderItem{
					{Status: model.StatusDelivered, Price: 25, Qty: 2, SubTotal: 50},
					{Status: model.StatusReturned, Price: 25, Qty: 2, SubTotal: 50},
				},
			},
			want: 150,
		},
		{
			name: "stored sub total is ignored",
			order: model.OrderWithItems{
				Order: model.Order{GrandTotal: 200},
				Items: []model.OrderItem{{Status: model.StatusReturned, Price: 25, Qty: 2, SubTotal: 52.5}},
			},
			want: 150,
		},
		{
			name: "several returned items",
			order: model.OrderWithItems{
				Order: model.Order{GrandTotal: 200},
				Items: []model.OrderItem{
					{Status: model.StatusReturned, Price: 12.5, Qty: 4},
					{Status: model.StatusReturned, Price: 10, Qty: 1, SubTotal: 10.5},
				},
			},
			want: 140,
		},
		{
			name: "cancelled items stay in the total",
			order: model.OrderWithItems{
				Order: model.Order{GrandTotal: 200},
				Items: []model.OrderItem{{Status: model.StatusCancelled, SubTotal: 80}},
			},
			want: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, CorrectedTotal(tt.order), 1e-9)
		})
	}
}

func TestReportService_BusinessOrders(t *testing.T) {
	ctx := context.Background()
	p := pagination.Params{Page: 1, Limit: 20}
	svc, m := newReportService()

	m.businesses.On("IDs", ctx, int64(7), false).Return([]int64{3}, nil).Once()
	m.orders.On("ListWithItems", ctx, repository.OrderFilter{BusinessIDs: []int64{3}, Keyword: "SO-1"}, p).
		Return(pagination.NewPage(1, p, []model.OrderWithItems{{
			Order: model.Order{BusinessOrderID: 55, GrandTotal: 200},
			Items: []model.OrderItem{{Status: model.StatusReturned, Price: 25, Qty: 2, SubTotal: 52.5}},
		}}), nil).Once()

	got, err := svc.BusinessOrders(ctx, 7, repository.OrderFilter{Keyword: "SO-1"}, p)

	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, 150.0, got.Data[0].CorrectedTotal)
	assert.Equal(t, "AED 150.00", got.Data[0].CorrectedTotalDisplay)
	assert.Equal(t, int64(1), got.TotalRecords)
}

func TestReportService_BusinessOrdersRejectsBadDate(t *testing.T) {
	svc, m := newReportService()

	_, err := svc.BusinessOrders(context.Background(), 7, repository.OrderFilter{FromDate: "2025-13-01"}, pagination.Params{Page: 1, Limit: 20})

	var ie *InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "from_date", ie.Field)
	m.businesses.AssertNotCalled(t, "IDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_SalesmanOrders(t *testing.T) {
	ctx := context.Background()
	p := pagination.Params{Page: 1, Limit: 20}

	t.Run("valid statuses", func(t *testing.T) {
		svc, m := newReportService()
		f := repository.SalesmanOrderFilter{Statuses: "0, 5"}
		m.orders.On("ListAcrossSalesmen", ctx, f, p).Return(pagination.NewPage[model.SalesmanOrder](0, p, nil), nil).Once()

		_, err := svc.SalesmanOrders(ctx, f, p)

		assert.NoError(t, err)
		m.orders.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newReportService()

		_, err := svc.SalesmanOrders(ctx, repository.SalesmanOrderFilter{Statuses: "5,x"}, p)

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "status", ie.Field)
	})
}

func TestReportService_CrossParts(t *testing.T) {
	ctx := context.Background()
	p := pagination.Params{Page: 1, Limit: 20}

	t.Run("part number required", func(t *testing.T) {
		svc, m := newReportService()

		_, err := svc.CrossParts(ctx, "  ", "", query.Desc, p)

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "part_number", ie.Field)
		m.inventory.AssertNotCalled(t, "CrossParts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delegates", func(t *testing.T) {
		svc, m := newReportService()
		want := pagination.NewPage(1, p, []model.CrossPart{{LinkID: 1, PartNumber: "0986494"}})
		m.inventory.On("CrossParts", ctx, "0986494", "30", query.Asc, p).Return(want, nil).Once()

		got, err := svc.CrossParts(ctx, "0986494", "30", query.Asc, p)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}
