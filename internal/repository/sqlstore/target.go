package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

const targetsTable = "business__salesmans_targets"

var targetColumns = []string{
	"t.business_salesman_target_id",
	"t.business_salesman_id",
	"t.business_salesman_target_from",
	"t.business_salesman_target_to",
	"COALESCE(t.business_salesman_target, 0)",
	"t.target_assigned_by",
	"t.target_assigned_datetime",
}

func targetDest(t *model.Target) []any {
	return []any{&t.TargetID, &t.SalesmanID, &t.From, &t.To, &t.Amount, &t.AssignedBy, &t.AssignedTime}
}

func scanTarget(row scanner) (model.Target, error) {
	var t model.Target
	err := row.Scan(targetDest(&t)...)
	return t, err
}

// TargetStore is the SQL implementation of repository.TargetRepository.
type TargetStore struct {
	store
}

// NewTargetStore creates a TargetStore.
func NewTargetStore(db database.DB, d query.Dialect) *TargetStore {
	return &TargetStore{store{db: db, dialect: d}}
}

var _ repository.TargetRepository = (*TargetStore)(nil)

func (r *TargetStore) Save(ctx context.Context, t *model.Target) (int64, error) {
	fields := map[string]any{
		"business_salesman_id":          t.SalesmanID,
		"business_salesman_target_from": t.From,
		"business_salesman_target_to":   t.To,
		"business_salesman_target":      t.Amount,
		"target_assigned_by":            t.AssignedBy,
		"target_assigned_datetime":      t.AssignedTime,
	}
	if t.TargetID == 0 {
		return r.insert(ctx, sq.Insert(targetsTable).SetMap(fields), "business_salesman_target_id")
	}
	err := r.update(ctx,
		sq.Update(targetsTable).SetMap(fields).Where(sq.Eq{"business_salesman_target_id": t.TargetID}),
		targetsTable, "business_salesman_target_id", t.TargetID)
	return t.TargetID, err
}

func (r *TargetStore) List(ctx context.Context, salesmanID *int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Target], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From(targetsTable+" t"),
		sq.Select(targetColumns...).From(targetsTable+" t"),
	).
		EqInt("t.business_salesman_id", salesmanID).
		OrderBy("t.business_salesman_target_id", sort)
	return page(ctx, r.store, b, p, scanTarget)
}

func (r *TargetStore) Get(ctx context.Context, targetID int64) (*model.Target, error) {
	var t model.Target
	sel := r.sb().Select(targetColumns...).From(targetsTable + " t").
		Where(sq.Eq{"t.business_salesman_target_id": targetID})
	if err := r.row(ctx, sel, targetDest(&t)...); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TargetStore) Delete(ctx context.Context, targetID int64) (int64, error) {
	return r.affected(ctx, r.sb().Delete(targetsTable).Where(sq.Eq{"business_salesman_target_id": targetID}))
}

func (r *TargetStore) Latest(ctx context.Context, salesmanID int64) (*model.Target, error) {
	var t model.Target
	sel := r.sb().Select(targetColumns...).From(targetsTable + " t").
		Where(sq.Eq{"t.business_salesman_id": salesmanID}).
		OrderBy("t.business_salesman_target_id DESC").
		Limit(1)
	if err := r.row(ctx, sel, targetDest(&t)...); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TargetStore) BySalesman(ctx context.Context, salesmanID int64) ([]model.Target, error) {
	return list(ctx, r.store,
		sq.Select(targetColumns...).From(targetsTable+" t").
			Where(sq.Eq{"t.business_salesman_id": salesmanID}).
			OrderBy("t.business_salesman_target_from ASC", "t.business_salesman_target_id ASC"),
		scanTarget)
}

// Report lists targets joined with their salesman. A from date keeps targets
// starting on or after it; a to date keeps targets ending on or before it.
func (r *TargetStore) Report(ctx context.Context, f repository.TargetReportFilter) ([]model.TargetReportRow, error) {
	b := r.compose(
		sq.Select("COUNT(*)").From(targetsTable+" t"),
		sq.Select(append(targetColumns,
			"s.business_salesmen_name",
			"s.business_salesmen_contact_number",
			"s.business_salesman_email",
		)...).
			From(targetsTable+" t").
			LeftJoin("business__salesmans s ON s.business_salesman_id = t.business_salesman_id"),
	).
		EqInt("t.business_salesman_id", f.SalesmanID).
		DateRange("t.business_salesman_target_from", f.FromDate, "").
		DateRange("t.business_salesman_target_to", "", f.ToDate).
		OrderBy("t.business_salesman_target_id", query.Desc)

	return all(ctx, r.store, b, func(row scanner) (model.TargetReportRow, error) {
		var tr model.TargetReportRow
		err := row.Scan(append(targetDest(&tr.Target), &tr.SalesmanName, &tr.ContactNumber, &tr.Email)...)
		return tr, err
	})
}

func (r *TargetStore) Sum(ctx context.Context) (float64, error) {
	return r.sum(ctx, r.sb().Select("COALESCE(SUM(business_salesman_target), 0)").From(targetsTable))
}
