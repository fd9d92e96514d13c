package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

// BusinessService serves a salesman's own businesses and their orders.
type BusinessService interface {
	List(ctx context.Context, salesmanID int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Business], error)
	Info(ctx context.Context, salesmanID, businessID int64) (*model.BusinessInfo, error)
	Dashboard(ctx context.Context, salesmanID, businessID int64) (*model.BusinessDashboard, error)
	Orders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error)
	OrderInfo(ctx context.Context, salesmanID, orderID int64) (*model.OrderInfo, error)
	StatusOptions() []model.StatusOption
}

type businessService struct {
	businesses repository.BusinessRepository
	orders     repository.OrderRepository
	log        zerolog.Logger
}

// NewBusinessService constructs a BusinessService.
func NewBusinessService(businesses repository.BusinessRepository, orders repository.OrderRepository, log zerolog.Logger) BusinessService {
	return &businessService{businesses: businesses, orders: orders, log: log}
}

func (s *businessService) List(ctx context.Context, salesmanID int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Business], error) {
	return s.businesses.List(ctx, salesmanID, sort, p)
}

func (s *businessService) Info(ctx context.Context, salesmanID, businessID int64) (*model.BusinessInfo, error) {
	if businessID <= 0 {
		return nil, invalid("business_id", "is required")
	}
	info, err := s.businesses.Info(ctx, businessID, salesmanID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("business %d", businessID))
	}
	return info, nil
}

// Dashboard computes every business metric concurrently once ownership is
// confirmed. The first failing metric cancels the rest.
func (s *businessService) Dashboard(ctx context.Context, salesmanID, businessID int64) (*model.BusinessDashboard, error) {
	if err := ensureOwned(ctx, s.businesses, salesmanID, businessID); err != nil {
		return nil, err
	}

	values := make([]float64, len(model.BusinessMetrics))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range model.BusinessMetrics {
		g.Go(func() error {
			v, err := s.businesses.Metric(gctx, businessID, m)
			if err != nil {
				return fmt.Errorf("metric %s: %w", m, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &model.BusinessDashboard{}
	for i, m := range model.BusinessMetrics {
		out.Set(m, values[i])
	}
	return out, nil
}

func (s *businessService) Orders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error) {
	if err := checkDates(f.FromDate, f.ToDate); err != nil {
		return nil, err
	}
	ids, err := s.businesses.IDs(ctx, salesmanID, false)
	if err != nil {
		return nil, err
	}
	f.BusinessIDs = ids
	return s.orders.List(ctx, f, p)
}

// OrderInfo returns an order with its items and delivery address. Orders of
// businesses outside the caller's portfolio are reported as missing.
func (s *businessService) OrderInfo(ctx context.Context, salesmanID, orderID int64) (*model.OrderInfo, error) {
	if orderID <= 0 {
		return nil, invalid("business_order_id", "is required")
	}
	what := fmt.Sprintf("order %d", orderID)
	order, err := s.orders.Detail(ctx, orderID)
	if err != nil {
		return nil, notFound(err, what)
	}
	ok, err := s.businesses.Owned(ctx, order.BusinessID, salesmanID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	items, err := s.orders.Items(ctx, orderID)
	if err != nil {
		return nil, err
	}
	info := &model.OrderInfo{Order: order, Items: items}
	if order.AddressID != nil {
		if info.Address, err = s.orders.Address(ctx, *order.AddressID); err != nil {
			return nil, err
		}
	}
	return info, nil
}

func (s *businessService) StatusOptions() []model.StatusOption {
	return model.StatusOptions()
}
