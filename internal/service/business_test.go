package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/repository"
	repoMocks "github.com/ghayaruae/crm-server/internal/repository/mocks"
)

func TestBusinessService_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("collects every metric", func(t *testing.T) {
		businesses := new(repoMocks.MockBusinessRepository)
		businesses.On("Owned", ctx, int64(3), int64(7)).Return(true, nil).Once()
		values := map[model.BusinessMetric]float64{
			model.MetricTotalOrders:     12,
			model.MetricDeliveredOrders: 8,
			model.MetricPendingOrders:   3,
			model.MetricCancelledOrders: 1,
			model.MetricCreditLimit:     10000,
			model.MetricUsedCredit:      2500.5,
			model.MetricRemainingCredit: 7499.5,
			model.MetricRewardPoints:    120,
		}
		for m, v := range values {
			businesses.On("Metric", mock.Anything, int64(3), m).Return(v, nil).Once()
		}
		svc := NewBusinessService(businesses, new(repoMocks.MockOrderRepository), zerolog.Nop())

		got, err := svc.Dashboard(ctx, 7, 3)

		require.NoError(t, err)
		assert.Equal(t, &model.BusinessDashboard{
			TotalOrders:          12,
			TotalDelivered:       8,
			TotalPending:         3,
			TotalCancelled:       1,
			TotalCreditLimit:     10000,
			TotalUsedCredit:      2500.5,
			TotalRemainingCredit: 7499.5,
			TotalRewardPoints:    120,
		}, got)
		businesses.AssertExpectations(t)
	})

	t.Run("one failing metric fails the response", func(t *testing.T) {
		businesses := new(repoMocks.MockBusinessRepository)
		businesses.On("Owned", ctx, int64(3), int64(7)).Return(true, nil).Once()
		boom := errors.New("lock wait timeout")
		for _, m := range model.BusinessMetrics {
			if m == model.MetricUsedCredit {
				businesses.On("Metric", mock.Anything, int64(3), m).Return(0.0, boom).Maybe()
				continue
			}
			businesses.On("Metric", mock.Anything, int64(3), m).Return(1.0, nil).Maybe()
		}
		svc := NewBusinessService(businesses, new(repoMocks.MockOrderRepository), zerolog.Nop())

		got, err := svc.Dashboard(ctx, 7, 3)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "metric total_used_credit_amount")
	})

	t.Run("foreign business", func(t *testing.T) {
		businesses := new(repoMocks.MockBusinessRepository)
		businesses.On("Owned", ctx, int64(3), int64(7)).Return(false, nil).Once()
		svc := NewBusinessService(businesses, new(repoMocks.MockOrderRepository), zerolog.Nop())

		_, err := svc.Dashboard(ctx, 7, 3)

		assert.ErrorIs(t, err, ErrNotFound)
		businesses.AssertNotCalled(t, "Metric", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing business id", func(t *testing.T) {
		svc := NewBusinessService(new(repoMocks.MockBusinessRepository), new(repoMocks.MockOrderRepository), zerolog.Nop())

		_, err := svc.Dashboard(ctx, 7, 0)

		var ie *InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "business_id", ie.Field)
	})
}

func TestBusinessService_Orders(t *testing.T) {
	ctx := context.Background()
	p := pagination.Params{Page: 1, Limit: 20}

	businesses := new(repoMocks.MockBusinessRepository)
	orders := new(repoMocks.MockOrderRepository)
	businesses.On("IDs", ctx, int64(7), false).Return([]int64{3, 4}, nil).Once()
	want := pagination.NewPage(1, p, []model.Order{{BusinessOrderID: 55}})
	orders.On("List", ctx, repository.OrderFilter{BusinessIDs: []int64{3, 4}, Status: "5"}, p).Return(want, nil).Once()
	svc := NewBusinessService(businesses, orders, zerolog.Nop())

	got, err := svc.Orders(ctx, 7, repository.OrderFilter{Status: "5"}, p)

	require.NoError(t, err)
	assert.Same(t, want, got)
	orders.AssertExpectations(t)
}

func TestBusinessService_OrderInfo(t *testing.T) {
	ctx := context.Background()
	addressID := int64(9)
	order := &model.OrderDetail{Order: model.Order{BusinessOrderID: 55, BusinessID: 3, AddressID: &addressID}}

	t.Run("full view", func(t *testing.T) {
		businesses := new(repoMocks.MockBusinessRepository)
		orders := new(repoMocks.MockOrderRepository)
		orders.On("Detail", ctx, int64(55)).Return(order, nil).Once()
		businesses.On("Owned", ctx, int64(3), int64(7)).Return(true, nil).Once()
		orders.On("Items", ctx, int64(55)).Return([]model.OrderItem{{ItemID: 1}}, nil).Once()
		orders.On("Address", ctx, int64(9)).Return(&model.Address{AddressID: 9}, nil).Once()
		svc := NewBusinessService(businesses, orders, zerolog.Nop())

		got, err := svc.OrderInfo(ctx, 7, 55)

		require.NoError(t, err)
		assert.Same(t, order, got.Order)
		assert.Len(t, got.Items, 1)
		assert.Equal(t, int64(9), got.Address.AddressID)
	})

	t.Run("order of another salesman", func(t *testing.T) {
		businesses := new(repoMocks.MockBusinessRepository)
		orders := new(repoMocks.MockOrderRepository)
		orders.On("Detail", ctx, int64(55)).Return(order, nil).Once()
		businesses.On("Owned", ctx, int64(3), int64(8)).Return(false, nil).Once()
		svc := NewBusinessService(businesses, orders, zerolog.Nop())

		_, err := svc.OrderInfo(ctx, 8, 55)

		assert.ErrorIs(t, err, ErrNotFound)
		orders.AssertNotCalled(t, "Items", mock.Anything, mock.Anything)
	})

	t.Run("missing order", func(t *testing.T) {
		orders := new(repoMocks.MockOrderRepository)
		orders.On("Detail", ctx, int64(56)).Return(nil, sql.ErrNoRows).Once()
		svc := NewBusinessService(new(repoMocks.MockBusinessRepository), orders, zerolog.Nop())

		_, err := svc.OrderInfo(ctx, 7, 56)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBusinessService_StatusOptions(t *testing.T) {
	svc := NewBusinessService(nil, nil, zerolog.Nop())

	opts := svc.StatusOptions()

	require.Len(t, opts, 10)
	assert.Equal(t, model.StatusOption{Value: "0", Label: "Pending"}, opts[0])
	assert.Equal(t, model.StatusOption{Value: "9", Label: "Returned Received"}, opts[9])
}
