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

const (
	followupsTable       = "business__salesmans_followups"
	followupSalesmanJoin = "business__salesmans s ON s.business_salesman_id = f.business_salesman_id"
)

var followupColumns = []string{
	"f.business_salesman_followup_id",
	"f.business_salesman_id",
	"f.business_id",
	"f.business_salesman_followup_type",
	"f.business_salesman_followup_date",
	"f.business_salesman_business_response",
	"f.business_salesman_followup_remark",
}

func followupDest(f *model.Followup) []any {
	return []any{&f.FollowupID, &f.SalesmanID, &f.BusinessID, &f.Type, &f.Date, &f.Response, &f.Remark}
}

// FollowupStore is the SQL implementation of repository.FollowupRepository.
type FollowupStore struct {
	store
}

// NewFollowupStore creates a FollowupStore.
func NewFollowupStore(db database.DB, d query.Dialect) *FollowupStore {
	return &FollowupStore{store{db: db, dialect: d}}
}

var _ repository.FollowupRepository = (*FollowupStore)(nil)

func (r *FollowupStore) Save(ctx context.Context, f *model.Followup) (int64, error) {
	fields := map[string]any{
		"business_salesman_id":                f.SalesmanID,
		"business_id":                         f.BusinessID,
		"business_salesman_followup_type":     f.Type,
		"business_salesman_followup_date":     f.Date,
		"business_salesman_business_response": f.Response,
		"business_salesman_followup_remark":   f.Remark,
	}
	if f.FollowupID == 0 {
		return r.insert(ctx, sq.Insert(followupsTable).SetMap(fields), "business_salesman_followup_id")
	}
	err := r.update(ctx,
		sq.Update(followupsTable).SetMap(fields).Where(sq.Eq{"business_salesman_followup_id": f.FollowupID}),
		followupsTable, "business_salesman_followup_id", f.FollowupID)
	return f.FollowupID, err
}

// List filters on the joined salesman name, so the count statement carries
// the same joins as the data statement.
func (r *FollowupStore) List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.FollowupListItem], error) {
	const businessJoin = "business b ON b.business_id = f.business_id"

	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From(followupsTable+" f").
			LeftJoin(followupSalesmanJoin).LeftJoin(businessJoin),
		sq.Select(append(followupColumns, "s.business_salesmen_name", "b.business_name")...).From(followupsTable+" f").
			LeftJoin(followupSalesmanJoin).LeftJoin(businessJoin),
	).
		Like("s.business_salesmen_name", keyword).
		OrderBy("f.business_salesman_followup_id", sort)

	return page(ctx, r.store, b, p, func(row scanner) (model.FollowupListItem, error) {
		var it model.FollowupListItem
		err := row.Scan(append(followupDest(&it.Followup), &it.SalesmanName, &it.BusinessName)...)
		return it, err
	})
}

func (r *FollowupStore) Get(ctx context.Context, followupID int64) (*model.Followup, error) {
	var f model.Followup
	sel := r.sb().Select(followupColumns...).From(followupsTable + " f").
		Where(sq.Eq{"f.business_salesman_followup_id": followupID})
	if err := r.row(ctx, sel, followupDest(&f)...); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FollowupStore) Delete(ctx context.Context, followupID int64) (int64, error) {
	return r.affected(ctx, r.sb().Delete(followupsTable).Where(sq.Eq{"business_salesman_followup_id": followupID}))
}

func (r *FollowupStore) Report(ctx context.Context, f repository.FollowupReportFilter) ([]model.FollowupReportRow, error) {
	b := r.compose(
		sq.Select("COUNT(*)").From(followupsTable+" f"),
		sq.Select(append(followupColumns,
			"s.business_salesmen_name",
			"s.business_salesmen_contact_number",
			"s.business_salesman_email",
		)...).From(followupsTable+" f").LeftJoin(followupSalesmanJoin),
	).
		DateBetween("f.business_salesman_followup_date", f.FromDate, f.ToDate).
		EqInt("f.business_salesman_id", f.SalesmanID).
		OrderBy("f.business_salesman_followup_id", query.Desc)

	return all(ctx, r.store, b, func(row scanner) (model.FollowupReportRow, error) {
		var fr model.FollowupReportRow
		err := row.Scan(append(followupDest(&fr.Followup), &fr.SalesmanName, &fr.ContactNumber, &fr.Email)...)
		return fr, err
	})
}

func (r *FollowupStore) TypeChart(ctx context.Context) (*model.FollowTypeChart, error) {
	sel := r.sb().Select(
		"COUNT(CASE WHEN business_salesman_followup_type = 'Meet' THEN 1 END)",
		"COUNT(CASE WHEN business_salesman_followup_type = 'Call' THEN 1 END)",
		"COUNT(CASE WHEN business_salesman_followup_type = 'Visit' THEN 1 END)",
		"COUNT(CASE WHEN business_salesman_followup_type = 'Whatsapp' THEN 1 END)",
		"COUNT(CASE WHEN business_salesman_followup_type = 'Mail' THEN 1 END)",
	).From(followupsTable)

	var c model.FollowTypeChart
	if err := r.row(ctx, sel, &c.Meet, &c.Call, &c.Visit, &c.Whatsapp, &c.Email); err != nil {
		return nil, err
	}
	return &c, nil
}
