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

var salesmanColumns = []string{
	"business_salesman_id",
	"business_salesmen_name",
	"business_salesman_email",
	"business_salesmen_contact_number",
	"COALESCE(business_salesman_login_id, '')",
}

func scanSalesman(row scanner) (model.Salesman, error) {
	var s model.Salesman
	err := row.Scan(&s.SalesmanID, &s.Name, &s.Email, &s.ContactNumber, &s.LoginID)
	return s, err
}

// SalesmanStore is the SQL implementation of repository.SalesmanRepository.
type SalesmanStore struct {
	store
}

// NewSalesmanStore creates a SalesmanStore.
func NewSalesmanStore(db database.DB, d query.Dialect) *SalesmanStore {
	return &SalesmanStore{store{db: db, dialect: d}}
}

var _ repository.SalesmanRepository = (*SalesmanStore)(nil)

func (r *SalesmanStore) Exists(ctx context.Context, salesmanID int64) (bool, error) {
	return r.exists(ctx, "business__salesmans", "business_salesman_id", salesmanID)
}

func (r *SalesmanStore) FindByID(ctx context.Context, salesmanID int64) (*model.Salesman, error) {
	s, err := scanSalesman(r.db.QueryRowContext(ctx, r.dialect.Rebind(
		"SELECT "+joinColumns(salesmanColumns)+" FROM business__salesmans WHERE business_salesman_id = ?"), salesmanID))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalesmanStore) FindByLoginID(ctx context.Context, loginID string) (*model.Salesman, error) {
	sel := r.sb().Select(append(salesmanColumns, "COALESCE(business_salesman_login_password, '')")...).
		From("business__salesmans").
		Where(sq.Eq{"business_salesman_login_id": loginID})

	var s model.Salesman
	if err := r.row(ctx, sel, &s.SalesmanID, &s.Name, &s.Email, &s.ContactNumber, &s.LoginID, &s.Password); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalesmanStore) Options(ctx context.Context) ([]model.SalesmanOption, error) {
	sel := sq.Select("business_salesman_id", "business_salesmen_name").
		From("business__salesmans").
		OrderBy("business_salesmen_name ASC")

	return list(ctx, r.store, sel, func(row scanner) (model.SalesmanOption, error) {
		var o model.SalesmanOption
		err := row.Scan(&o.SalesmanID, &o.Name)
		return o, err
	})
}

func (r *SalesmanStore) All(ctx context.Context) ([]model.Salesman, error) {
	return list(ctx, r.store,
		sq.Select(salesmanColumns...).From("business__salesmans").OrderBy("business_salesman_id"),
		scanSalesman)
}

func (r *SalesmanStore) List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.Salesman], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From("business__salesmans"),
		sq.Select(salesmanColumns...).From("business__salesmans"),
	).
		Like("business_salesmen_name", keyword).
		OrderBy("business_salesman_id", sort)
	return page(ctx, r.store, b, p, scanSalesman)
}

func (r *SalesmanStore) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, r.sb().Select("COUNT(*)").From("business__salesmans"))
}
