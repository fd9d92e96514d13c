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

// InventoryStore is the SQL implementation of repository.InventoryRepository.
type InventoryStore struct {
	store
}

// NewInventoryStore creates an InventoryStore.
func NewInventoryStore(db database.DB, d query.Dialect) *InventoryStore {
	return &InventoryStore{store{db: db, dialect: d}}
}

var _ repository.InventoryRepository = (*InventoryStore)(nil)

func (r *InventoryStore) CrossParts(ctx context.Context, partNumber, supID string, sort query.Direction, p pagination.Params) (*pagination.Page[model.CrossPart], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From("inventory__stock_cross"),
		sq.Select(
			"inventory_stock_oe_link_id",
			"part_number",
			"part_sup_id",
			"cross_part_number",
			"cross_brand_name",
		).From("inventory__stock_cross"),
	).
		Eq("part_number", partNumber).
		Eq("part_sup_id", supID).
		OrderBy("inventory_stock_oe_link_id", sort)

	return page(ctx, r.store, b, p, func(row scanner) (model.CrossPart, error) {
		var cp model.CrossPart
		err := row.Scan(&cp.LinkID, &cp.PartNumber, &cp.SupID, &cp.CrossPartNumber, &cp.CrossBrandName)
		return cp, err
	})
}

func (r *InventoryStore) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	sel := sq.Select("SUP_ID", "SUP_BRAND", "SUP_LOGO_NAME", "SUP_STATUS").
		From("SUPPLIERS").
		Where(sq.Eq{"SUP_STATUS": 1}).
		OrderBy("SUP_BRAND ASC")

	return list(ctx, r.store, sel, func(row scanner) (model.Supplier, error) {
		var s model.Supplier
		err := row.Scan(&s.SupID, &s.SupBrand, &s.SupLogo, &s.SupStatus)
		return s, err
	})
}
