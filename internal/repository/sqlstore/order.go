package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

const orderBusinessJoin = "business b ON b.business_id = o.business_order_business_id"

var orderColumns = []string{
	"o.business_order_id",
	"o.secret_order_id",
	"o.business_order_business_id",
	"b.business_name",
	"COALESCE(o.business_order_status, 0)",
	"COALESCE(o.business_order_grand_total, 0)",
	"o.business_order_date",
	"o.business_order_address_id",
	"o.order_by",
}

var itemColumns = []string{
	"i.business_order_item_id",
	"i.item_part_number",
	"i.item_part_name",
	"COALESCE(i.item_price, 0)",
	"COALESCE(i.item_qty, 0)",
	"COALESCE(i.item_status, 0)",
	"COALESCE(i.business_order_sub_total, 0)",
}

func orderDest(o *model.Order) []any {
	return []any{
		&o.BusinessOrderID,
		&o.SecretOrderID,
		&o.BusinessID,
		&o.BusinessName,
		&o.Status,
		&o.GrandTotal,
		&o.OrderDate,
		&o.AddressID,
		&o.OrderBy,
	}
}

func scanOrder(row scanner) (model.Order, error) {
	var o model.Order
	if err := row.Scan(orderDest(&o)...); err != nil {
		return o, err
	}
	o.StatusLabel = model.StatusLabel(o.Status)
	return o, nil
}

// orderItemRow is one row of the order to item left join. Item is nil for
// an order without items.
type orderItemRow struct {
	Order model.Order
	Item  *model.OrderItem
}

func scanOrderItemRow(row scanner) (orderItemRow, error) {
	var (
		r      orderItemRow
		itemID sql.NullInt64
		item   model.OrderItem
	)
	dest := append(orderDest(&r.Order),
		&itemID,
		&item.PartNumber,
		&item.PartName,
		&item.Price,
		&item.Qty,
		&item.Status,
		&item.SubTotal,
	)
	if err := row.Scan(dest...); err != nil {
		return r, err
	}
	r.Order.StatusLabel = model.StatusLabel(r.Order.Status)
	if itemID.Valid {
		item.ItemID = itemID.Int64
		item.OrderID = r.Order.BusinessOrderID
		r.Item = &item
	}
	return r, nil
}

// OrderStore is the SQL implementation of repository.OrderRepository.
type OrderStore struct {
	store
}

// NewOrderStore creates an OrderStore.
func NewOrderStore(db database.DB, d query.Dialect) *OrderStore {
	return &OrderStore{store{db: db, dialect: d}}
}

var _ repository.OrderRepository = (*OrderStore)(nil)

// filtered applies an OrderFilter to a composition over business__orders o
// joined with business b.
func (r *OrderStore) filtered(b *query.Builder, f repository.OrderFilter) *query.Builder {
	return b.
		Where(sq.Eq{"o.business_order_business_id": f.BusinessIDs}).
		Like("b.business_name", f.BusinessName).
		Like("o.secret_order_id", f.Keyword).
		Eq("o.business_order_status", f.Status).
		DateBetween("o.business_order_date", f.FromDate, f.ToDate)
}

func (r *OrderStore) List(ctx context.Context, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error) {
	if len(f.BusinessIDs) == 0 {
		return pagination.NewPage[model.Order](0, p, nil), nil
	}
	b := r.filtered(r.compose(
		sq.Select("COUNT(*) AS total_records").From("business__orders o").LeftJoin(orderBusinessJoin),
		sq.Select(orderColumns...).From("business__orders o").LeftJoin(orderBusinessJoin),
	), f).OrderBy("o.business_order_id", f.Sort)

	return page(ctx, r.store, b, p, scanOrder)
}

// ListWithItems pages distinct order ids first so items never inflate the
// count, then loads the orders on the page with all of their items.
func (r *OrderStore) ListWithItems(ctx context.Context, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.OrderWithItems], error) {
	if len(f.BusinessIDs) == 0 {
		return pagination.NewPage[model.OrderWithItems](0, p, nil), nil
	}
	ids := r.filtered(r.compose(
		sq.Select("COUNT(DISTINCT o.business_order_id) AS total_records").From("business__orders o").LeftJoin(orderBusinessJoin),
		sq.Select("o.business_order_id").Distinct().From("business__orders o").LeftJoin(orderBusinessJoin),
	), f).OrderBy("o.business_order_id", f.Sort)

	plan, err := ids.Plan()
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, orderIDs []int64) ([]orderItemRow, error) {
		sel := sq.Select(append(orderColumns, itemColumns...)...).
			From("business__orders o").
			LeftJoin(orderBusinessJoin).
			LeftJoin("business__orders_items i ON i.business_order_id = o.business_order_id").
			Where(sq.Eq{"o.business_order_id": orderIDs}).
			OrderBy("o.business_order_id", "i.business_order_item_id")
		return list(ctx, r.store, sel, scanOrderItemRow)
	}

	return pagination.PaginateExpanded(ctx, r.db, plan, p, fetch,
		func(row orderItemRow) int64 { return row.Order.BusinessOrderID },
		func(_ int64, rows []orderItemRow) model.OrderWithItems {
			out := model.OrderWithItems{Order: rows[0].Order, Items: make([]model.OrderItem, 0, len(rows))}
			for _, row := range rows {
				if row.Item != nil {
					out.Items = append(out.Items, *row.Item)
				}
			}
			return out
		})
}

func (r *OrderStore) ListAcrossSalesmen(ctx context.Context, f repository.SalesmanOrderFilter, p pagination.Params) (*pagination.Page[model.SalesmanOrder], error) {
	const salesmanJoin = "business__salesmans s ON s.business_salesman_id = b.business_salesman_id"

	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From("business__orders o").
			LeftJoin(orderBusinessJoin).LeftJoin(salesmanJoin),
		sq.Select(append(orderColumns, "b.business_salesman_id", "s.business_salesmen_name")...).From("business__orders o").
			LeftJoin(orderBusinessJoin).LeftJoin(salesmanJoin),
	).
		Where(sq.NotEq{"b.business_salesman_id": nil}).
		Like("b.business_name", f.Keyword).
		Like("s.business_salesmen_name", f.SalesmanName).
		InCSV("o.business_order_status", f.Statuses).
		DateRange("o.business_order_date", f.FromDate, f.ToDate).
		OrderBy("o.business_order_id", f.Sort)

	return page(ctx, r.store, b, p, func(row scanner) (model.SalesmanOrder, error) {
		var so model.SalesmanOrder
		if err := row.Scan(append(orderDest(&so.Order), &so.SalesmanID, &so.SalesmanName)...); err != nil {
			return so, err
		}
		so.StatusLabel = model.StatusLabel(so.Status)
		return so, nil
	})
}

func (r *OrderStore) Detail(ctx context.Context, orderID int64) (*model.OrderDetail, error) {
	sel := r.sb().Select(append(orderColumns, "u.user_name")...).
		From("business__orders o").
		LeftJoin(orderBusinessJoin).
		LeftJoin("business__users u ON u.business_user_id = o.order_by").
		Where(sq.Eq{"o.business_order_id": orderID})

	var d model.OrderDetail
	if err := r.row(ctx, sel, append(orderDest(&d.Order), &d.OrderByName)...); err != nil {
		return nil, err
	}
	d.StatusLabel = model.StatusLabel(d.Status)
	return &d, nil
}

func (r *OrderStore) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	sel := sq.Select(itemColumns...).
		From("business__orders_items i").
		Where(sq.Eq{"i.business_order_id": orderID}).
		OrderBy("i.business_order_item_id")

	return list(ctx, r.store, sel, func(row scanner) (model.OrderItem, error) {
		it := model.OrderItem{OrderID: orderID}
		err := row.Scan(&it.ItemID, &it.PartNumber, &it.PartName, &it.Price, &it.Qty, &it.Status, &it.SubTotal)
		return it, err
	})
}

func (r *OrderStore) Address(ctx context.Context, addressID int64) (*model.Address, error) {
	sel := r.sb().Select(
		"business_address_id",
		"business_id",
		"business_address_name",
		"business_address",
		"business_address_city",
		"business_address_country",
		"business_address_phone",
	).From("business__addresses").Where(sq.Eq{"business_address_id": addressID})

	var a model.Address
	err := r.row(ctx, sel, &a.AddressID, &a.BusinessID, &a.Name, &a.Line, &a.City, &a.Country, &a.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *OrderStore) CountPending(ctx context.Context, businessIDs []int64) (int64, error) {
	if len(businessIDs) == 0 {
		return 0, nil
	}
	return r.count(ctx, r.sb().Select("COUNT(*)").From("business__orders").
		Where(sq.Eq{"business_order_business_id": businessIDs}).
		Where(sq.Eq{"business_order_status": model.StatusPending}))
}

func (r *OrderStore) SumGrandTotal(ctx context.Context, f repository.SalesFilter) (float64, error) {
	if len(f.BusinessIDs) == 0 {
		return 0, nil
	}
	sel := r.sb().Select("COALESCE(SUM(business_order_grand_total), 0)").From("business__orders").
		Where(sq.Eq{"business_order_business_id": f.BusinessIDs}).
		Where("DATE(business_order_date) BETWEEN ? AND ?", f.From, f.To)
	if f.DeliveredOnly {
		sel = sel.Where(sq.Eq{"business_order_status": model.StatusDelivered})
	}
	return r.sum(ctx, sel)
}

func (r *OrderStore) DailySeries(ctx context.Context, salesmanID int64, from, to string) ([]model.SalesPoint, error) {
	sel := sq.Select(
		"DATE(o.business_order_date) AS order_date",
		"COALESCE(SUM(o.business_order_grand_total), 0) AS total_sales",
		"COUNT(o.business_order_id) AS total_orders",
	).
		From("business__orders o").
		Join(orderBusinessJoin).
		Where(sq.Eq{"b.business_salesman_id": salesmanID}).
		Where(sq.Eq{"o.business_order_status": model.StatusDelivered}).
		Where("DATE(o.business_order_date) BETWEEN ? AND ?", from, to).
		GroupBy("DATE(o.business_order_date)").
		OrderBy("order_date ASC")

	return list(ctx, r.store, sel, func(row scanner) (model.SalesPoint, error) {
		var sp model.SalesPoint
		err := row.Scan(&sp.Day, &sp.Sales, &sp.Orders)
		return sp, err
	})
}

func (r *OrderStore) DailySales(ctx context.Context, businessIDs []int64, day string) (*model.DailySales, error) {
	if len(businessIDs) == 0 {
		return nil, nil
	}
	sel := r.sb().Select(
		"DATE(o.business_order_date) AS sale_date",
		"COUNT(DISTINCT o.business_order_id) AS total_orders",
		"COALESCE(SUM(i.business_order_sub_total), 0) AS total_sales",
	).
		From("business__orders o").
		LeftJoin("business__orders_items i ON i.business_order_id = o.business_order_id").
		Where(sq.Eq{"i.item_status": model.StatusDelivered}).
		Where(sq.Eq{"o.business_order_business_id": businessIDs}).
		Where("DATE(o.business_order_date) = ?", day).
		GroupBy("DATE(o.business_order_date)")

	var (
		d    model.DailySales
		date model.Date
	)
	err := r.row(ctx, sel, &date, &d.TotalOrders, &d.TotalSales)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.SaleDate = date.String()
	return &d, nil
}

func (r *OrderStore) Totals(ctx context.Context, businessIDs []int64) (model.OrderTotals, error) {
	var t model.OrderTotals
	if len(businessIDs) == 0 {
		return t, nil
	}
	sel := r.sb().Select(
		"COUNT(*)",
		"COUNT(CASE WHEN business_order_status = 0 THEN 1 END)",
		"COALESCE(SUM(CASE WHEN business_order_status = 0 THEN business_order_grand_total ELSE 0 END), 0)",
	).
		From("business__orders").
		Where(sq.Eq{"business_order_business_id": businessIDs})

	err := r.row(ctx, sel, &t.TotalOrders, &t.PendingOrders, &t.PendingAmount)
	return t, err
}
