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

const partRequestsTable = "inventory__part_requests"

var partRequestColumns = []string{
	"r.inventory_part_request_id",
	"COALESCE(r.inventory_store_id, 0)",
	"r.business_salesman_id",
	"r.request_part_name",
	"r.request_brand_name",
	"r.request_part_number",
	"COALESCE(r.request_part_qty, 0)",
	"r.request_note",
	"r.request_part_market_price",
	"r.request_supersedes",
	"COALESCE(r.request_status, 0)",
	"r.request_date",
}

func partRequestDest(pr *model.PartRequest) []any {
	return []any{
		&pr.RequestID,
		&pr.StoreID,
		&pr.SalesmanID,
		&pr.PartName,
		&pr.BrandName,
		&pr.PartNumber,
		&pr.Qty,
		&pr.Note,
		&pr.MarketPrice,
		&pr.Supersedes,
		&pr.Status,
		&pr.RequestDate,
	}
}

func scanPartRequest(row scanner) (model.PartRequest, error) {
	var pr model.PartRequest
	err := row.Scan(partRequestDest(&pr)...)
	return pr, err
}

// PartRequestStore is the SQL implementation of repository.PartRequestRepository.
type PartRequestStore struct {
	store
}

// NewPartRequestStore creates a PartRequestStore.
func NewPartRequestStore(db database.DB, d query.Dialect) *PartRequestStore {
	return &PartRequestStore{store{db: db, dialect: d}}
}

var _ repository.PartRequestRepository = (*PartRequestStore)(nil)

func (r *PartRequestStore) Save(ctx context.Context, pr *model.PartRequest) (int64, error) {
	fields := map[string]any{
		"inventory_store_id":        pr.StoreID,
		"business_salesman_id":      pr.SalesmanID,
		"request_part_name":         pr.PartName,
		"request_brand_name":        pr.BrandName,
		"request_part_number":       pr.PartNumber,
		"request_part_qty":          pr.Qty,
		"request_note":              pr.Note,
		"request_part_market_price": pr.MarketPrice,
		"request_supersedes":        pr.Supersedes,
		"request_status":            pr.Status,
		"request_date":              pr.RequestDate,
	}
	if pr.RequestID == 0 {
		return r.insert(ctx, sq.Insert(partRequestsTable).SetMap(fields), "inventory_part_request_id")
	}
	err := r.update(ctx,
		sq.Update(partRequestsTable).SetMap(fields).Where(sq.Eq{"inventory_part_request_id": pr.RequestID}),
		partRequestsTable, "inventory_part_request_id", pr.RequestID)
	return pr.RequestID, err
}

func (r *PartRequestStore) List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.PartRequest], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From(partRequestsTable+" r"),
		sq.Select(partRequestColumns...).From(partRequestsTable+" r"),
	).
		Like("r.request_part_name", keyword).
		OrderBy("r.inventory_part_request_id", sort)
	return page(ctx, r.store, b, p, scanPartRequest)
}

func (r *PartRequestStore) Get(ctx context.Context, requestID int64) (*model.PartRequest, error) {
	var pr model.PartRequest
	sel := r.sb().Select(partRequestColumns...).From(partRequestsTable + " r").
		Where(sq.Eq{"r.inventory_part_request_id": requestID})
	if err := r.row(ctx, sel, partRequestDest(&pr)...); err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *PartRequestStore) Delete(ctx context.Context, requestID int64) (int64, error) {
	return r.affected(ctx, r.sb().Delete(partRequestsTable).Where(sq.Eq{"inventory_part_request_id": requestID}))
}

func (r *PartRequestStore) Latest(ctx context.Context, n int) ([]model.PartInquiry, error) {
	sel := sq.Select(append(partRequestColumns, "s.business_salesmen_name")...).
		From(partRequestsTable + " r").
		LeftJoin("business__salesmans s ON s.business_salesman_id = r.business_salesman_id").
		OrderBy("r.inventory_part_request_id DESC").
		Limit(uint64(n))

	return list(ctx, r.store, sel, func(row scanner) (model.PartInquiry, error) {
		var pi model.PartInquiry
		err := row.Scan(append(partRequestDest(&pi.PartRequest), &pi.SalesmanName)...)
		return pi, err
	})
}
