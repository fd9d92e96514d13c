package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

var businessColumns = []string{
	"b.business_id",
	"b.business_name",
	"b.business_contact_number",
	"b.business_email",
	"b.business_mobile",
	"b.business_salesman_id",
	"b.business_level_id",
	"COALESCE(b.business_credit_limit, 0)",
	"COALESCE(b.business_credit_balance, 0)",
	"COALESCE(b.business_reward_points_balance, 0)",
	"COALESCE(b.is_active, 0)",
	"b.business_registered_date",
}

func businessDest(b *model.Business) []any {
	return []any{
		&b.BusinessID,
		&b.BusinessName,
		&b.ContactNumber,
		&b.Email,
		&b.Mobile,
		&b.SalesmanID,
		&b.LevelID,
		&b.CreditLimit,
		&b.CreditBalance,
		&b.RewardPointsBalance,
		&b.IsActive,
		&b.RegisteredDate,
	}
}

func scanBusiness(row scanner) (model.Business, error) {
	var b model.Business
	err := row.Scan(businessDest(&b)...)
	return b, err
}

// metricStatements maps each dashboard figure to its aggregate. Every
// statement binds the business id once and yields one numeric column.
var metricStatements = map[model.BusinessMetric]string{
	model.MetricTotalOrders: "SELECT COUNT(*) FROM business__orders WHERE business_order_business_id = ?",
	model.MetricDeliveredOrders: fmt.Sprintf(
		"SELECT COUNT(*) FROM business__orders WHERE business_order_status = %d AND business_order_business_id = ?", model.StatusDelivered),
	model.MetricPendingOrders: fmt.Sprintf(
		"SELECT COUNT(*) FROM business__orders WHERE business_order_status = %d AND business_order_business_id = ?", model.StatusPending),
	model.MetricCancelledOrders: fmt.Sprintf(
		"SELECT COUNT(*) FROM business__orders WHERE business_order_status = %d AND business_order_business_id = ?", model.StatusCancelled),
	model.MetricCreditLimit:     "SELECT COALESCE(SUM(business_credit_limit), 0) FROM business WHERE business_id = ?",
	model.MetricUsedCredit:      "SELECT COALESCE(SUM(business_credit_limit - business_credit_balance), 0) FROM business WHERE business_id = ?",
	model.MetricRemainingCredit: "SELECT COALESCE(SUM(business_credit_balance), 0) FROM business WHERE business_id = ?",
	model.MetricRewardPoints:    "SELECT COALESCE(SUM(business_reward_points_balance), 0) FROM business WHERE business_id = ?",
}

// BusinessStore is the SQL implementation of repository.BusinessRepository.
type BusinessStore struct {
	store
}

// NewBusinessStore creates a BusinessStore.
func NewBusinessStore(db database.DB, d query.Dialect) *BusinessStore {
	return &BusinessStore{store{db: db, dialect: d}}
}

var _ repository.BusinessRepository = (*BusinessStore)(nil)

func (r *BusinessStore) List(ctx context.Context, salesmanID int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Business], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From("business b"),
		sq.Select(businessColumns...).From("business b"),
	).
		Where(sq.Eq{"b.business_salesman_id": salesmanID}).
		OrderBy("b.business_id", sort)
	return page(ctx, r.store, b, p, scanBusiness)
}

func (r *BusinessStore) Info(ctx context.Context, businessID, salesmanID int64) (*model.BusinessInfo, error) {
	sel := r.sb().Select(append(businessColumns, "l.business_level_name")...).
		From("business b").
		LeftJoin("business__levels l ON l.business_level_id = b.business_level_id").
		Where(sq.Eq{"b.business_id": businessID, "b.business_salesman_id": salesmanID})

	var info model.BusinessInfo
	dest := append(businessDest(&info.Business), &info.LevelName)
	if err := r.row(ctx, sel, dest...); err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *BusinessStore) Owned(ctx context.Context, businessID, salesmanID int64) (bool, error) {
	n, err := r.count(ctx, r.sb().Select("COUNT(*)").From("business").
		Where(sq.Eq{"business_id": businessID, "business_salesman_id": salesmanID}))
	return n > 0, err
}

func (r *BusinessStore) IDs(ctx context.Context, salesmanID int64, excludeDeleted bool) ([]int64, error) {
	sel := sq.Select("business_id").From("business").
		Where(sq.Eq{"business_salesman_id": salesmanID})
	if excludeDeleted {
		sel = sel.Where(sq.Eq{"business_is_deleted": "0"})
	}
	return list(ctx, r.store, sel.OrderBy("business_id"), scanInt64)
}

func (r *BusinessStore) Count(ctx context.Context, f repository.BusinessCountFilter) (int64, error) {
	sel := r.sb().Select("COUNT(*)").From("business").
		Where(sq.Eq{"business_salesman_id": f.SalesmanID})
	if f.InactiveOnly {
		sel = sel.Where(sq.Eq{"is_active": 0})
	}
	if f.ExcludeDeleted {
		sel = sel.Where(sq.Eq{"business_is_deleted": "0"})
	}
	return r.count(ctx, sel)
}

func (r *BusinessStore) Metric(ctx context.Context, businessID int64, m model.BusinessMetric) (float64, error) {
	stmt, ok := metricStatements[m]
	if !ok {
		return 0, fmt.Errorf("unknown business metric %q", m)
	}
	var v float64
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(stmt), businessID).Scan(&v); err != nil {
		return 0, fmt.Errorf("business metric %s: %w", m, err)
	}
	return v, nil
}

// Idle groups the salesman's businesses with their orders and keeps the
// groups whose newest order is missing or older than the cutoff. The count
// runs over the same grouped statement as a derived table.
func (r *BusinessStore) Idle(ctx context.Context, f repository.IdleFilter, p pagination.Params) (*pagination.Page[model.IdleBusiness], error) {
	grouped := func(columns ...string) sq.SelectBuilder {
		return sq.Select(columns...).
			From("business b").
			LeftJoin("business__orders o ON o.business_order_business_id = b.business_id").
			Where(sq.Eq{"b.business_salesman_id": f.SalesmanID}).
			GroupBy("b.business_id", "b.business_name", "b.business_contact_number", "b.business_email", "b.business_registered_date").
			Having("MAX(o.business_order_date) IS NULL OR MAX(o.business_order_date) < ?", f.Cutoff.Format(model.DateLayout))
	}

	b := r.compose(
		sq.Select("COUNT(*) AS total_records").FromSelect(grouped("b.business_id"), "idle"),
		grouped(
			"b.business_id",
			"b.business_name",
			"b.business_contact_number",
			"b.business_email",
			"b.business_registered_date",
			"MAX(o.business_order_date) AS last_order_date",
			"COUNT(o.business_order_id) AS total_orders",
		),
	).
		OrderBy("COALESCE(MAX(o.business_order_date), b.business_registered_date)", query.Asc).
		OrderBy("b.business_id", query.Asc)

	return page(ctx, r.store, b, p, func(row scanner) (model.IdleBusiness, error) {
		var ib model.IdleBusiness
		err := row.Scan(
			&ib.BusinessID,
			&ib.BusinessName,
			&ib.ContactNumber,
			&ib.Email,
			&ib.RegisteredDate,
			&ib.LastOrderDate,
			&ib.TotalOrders,
		)
		return ib, err
	})
}

func (r *BusinessStore) Assigned(ctx context.Context, f repository.AssignedFilter, p pagination.Params) (*pagination.Page[model.AssignedBusiness], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From("business b").
			LeftJoin("business__salesmans s ON s.business_salesman_id = b.business_salesman_id"),
		sq.Select(append(businessColumns, "s.business_salesmen_name")...).From("business b").
			LeftJoin("business__salesmans s ON s.business_salesman_id = b.business_salesman_id"),
	).
		Where(sq.NotEq{"b.business_salesman_id": nil}).
		Eq("b.is_active", f.Status).
		Eq("b.business_name", f.Keyword).
		OrderBy("b.business_id", f.Sort)

	return page(ctx, r.store, b, p, func(row scanner) (model.AssignedBusiness, error) {
		var ab model.AssignedBusiness
		err := row.Scan(append(businessDest(&ab.Business), &ab.SalesmanName)...)
		return ab, err
	})
}

func (r *BusinessStore) Inactive(ctx context.Context) ([]model.InactiveBusiness, error) {
	sel := sq.Select("business_id", "business_name", "business_mobile", "COALESCE(is_active, 0)").
		From("business").
		Where(sq.NotEq{"business_salesman_id": nil}).
		Where(sq.Eq{"is_active": 0}).
		OrderBy("business_id DESC")

	return list(ctx, r.store, sel, func(row scanner) (model.InactiveBusiness, error) {
		var ib model.InactiveBusiness
		err := row.Scan(&ib.BusinessID, &ib.BusinessName, &ib.Mobile, &ib.IsActive)
		return ib, err
	})
}

func (r *BusinessStore) AssignedSummary(ctx context.Context) ([]int64, int64, error) {
	type assigned struct {
		id     int64
		active int
	}
	sel := sq.Select("business_id", "COALESCE(is_active, 0)").
		From("business").
		Where("business_salesman_id IN (SELECT business_salesman_id FROM business__salesmans)").
		OrderBy("business_id")

	rows, err := list(ctx, r.store, sel, func(row scanner) (assigned, error) {
		var a assigned
		err := row.Scan(&a.id, &a.active)
		return a, err
	})
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(rows))
	var inactive int64
	for _, a := range rows {
		ids = append(ids, a.id)
		if a.active == 0 {
			inactive++
		}
	}
	return ids, inactive, nil
}

func scanInt64(row scanner) (int64, error) {
	var v int64
	err := row.Scan(&v)
	return v, err
}
