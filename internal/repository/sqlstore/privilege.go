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

const (
	privilegeCatalogTable = "business__salesman_privilage_list"
	privilegeGrantTable   = "business__salesman_privilage"
)

var privilegeColumns = []string{"salesman_privilage_id", "salesman_privilege_name", "salesman_description"}

func scanPrivilege(row scanner) (model.Privilege, error) {
	var pr model.Privilege
	err := row.Scan(&pr.PrivilegeID, &pr.Name, &pr.Description)
	return pr, err
}

// PrivilegeStore is the SQL implementation of repository.PrivilegeRepository.
type PrivilegeStore struct {
	store
}

// NewPrivilegeStore creates a PrivilegeStore.
func NewPrivilegeStore(db database.DB, d query.Dialect) *PrivilegeStore {
	return &PrivilegeStore{store{db: db, dialect: d}}
}

var _ repository.PrivilegeRepository = (*PrivilegeStore)(nil)

func (r *PrivilegeStore) Catalog(ctx context.Context) ([]model.Privilege, error) {
	return list(ctx, r.store,
		sq.Select(privilegeColumns...).From(privilegeCatalogTable).OrderBy("salesman_privilage_id"),
		scanPrivilege)
}

func (r *PrivilegeStore) List(ctx context.Context, sort query.Direction, p pagination.Params) (*pagination.Page[model.Privilege], error) {
	b := r.compose(
		sq.Select("COUNT(*) AS total_records").From(privilegeCatalogTable),
		sq.Select(privilegeColumns...).From(privilegeCatalogTable),
	).OrderBy("salesman_privilage_id", sort)
	return page(ctx, r.store, b, p, scanPrivilege)
}

func (r *PrivilegeStore) Save(ctx context.Context, pr *model.Privilege) (int64, error) {
	fields := map[string]any{
		"salesman_privilege_name": pr.Name,
		"salesman_description":    pr.Description,
	}
	if pr.PrivilegeID == 0 {
		return r.insert(ctx, sq.Insert(privilegeCatalogTable).SetMap(fields), "salesman_privilage_id")
	}
	err := r.update(ctx,
		sq.Update(privilegeCatalogTable).SetMap(fields).Where(sq.Eq{"salesman_privilage_id": pr.PrivilegeID}),
		privilegeCatalogTable, "salesman_privilage_id", pr.PrivilegeID)
	return pr.PrivilegeID, err
}

// ReplacePermissions deletes every grant of the salesman and inserts one
// view-only grant per privilege. Either all statements apply or none do.
func (r *PrivilegeStore) ReplacePermissions(ctx context.Context, salesmanID int64, privilegeIDs []int64) (err error) {
	del, delArgs, err := r.sb().Delete(privilegeGrantTable).Where(sq.Eq{"business_salesman_id": salesmanID}).ToSql()
	if err != nil {
		return fmt.Errorf("build statement: %w", err)
	}
	ins := r.sb().Insert(privilegeGrantTable).
		Columns("business_salesman_id", "privilege_id", "privilege_view", "privilege_edit", "privilege_delete")
	for _, id := range privilegeIDs {
		ins = ins.Values(salesmanID, id, 1, 0, 0)
	}
	insSQL, insArgs, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build statement: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, del, delArgs...); err != nil {
		return fmt.Errorf("delete permissions: %w", err)
	}
	if _, err = tx.ExecContext(ctx, insSQL, insArgs...); err != nil {
		return fmt.Errorf("insert permissions: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit permissions: %w", err)
	}
	return nil
}
