package repository

import (
	"context"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
)

// OrderRepository reads orders, their items and sales aggregates.
type OrderRepository interface {
	// List pages orders one row per order.
	List(ctx context.Context, f OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error)

	// ListWithItems pages distinct orders, then loads every item of the
	// orders on the page.
	ListWithItems(ctx context.Context, f OrderFilter, p pagination.Params) (*pagination.Page[model.OrderWithItems], error)

	// ListAcrossSalesmen pages orders of every business that has a salesman.
	ListAcrossSalesmen(ctx context.Context, f SalesmanOrderFilter, p pagination.Params) (*pagination.Page[model.SalesmanOrder], error)

	// Detail returns one order or sql.ErrNoRows.
	Detail(ctx context.Context, orderID int64) (*model.OrderDetail, error)

	// Items lists the items of one order.
	Items(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// Address returns a delivery address, or nil when it does not exist.
	Address(ctx context.Context, addressID int64) (*model.Address, error)

	// CountPending counts pending orders of the given businesses.
	CountPending(ctx context.Context, businessIDs []int64) (int64, error)

	// SumGrandTotal sums order grand totals in a date window.
	SumGrandTotal(ctx context.Context, f SalesFilter) (float64, error)

	// DailySeries returns delivered sales per day for a salesman's businesses.
	DailySeries(ctx context.Context, salesmanID int64, from, to string) ([]model.SalesPoint, error)

	// DailySales aggregates delivered items on one day, or returns nil when
	// there were none.
	DailySales(ctx context.Context, businessIDs []int64, day string) (*model.DailySales, error)

	// Totals counts orders and sums pending orders of the given businesses.
	Totals(ctx context.Context, businessIDs []int64) (model.OrderTotals, error)
}
