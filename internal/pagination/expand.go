package pagination

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ghayaruae/crm-server/internal/query"
)

// FetchFunc loads every child-joined row for the given parent identifiers.
type FetchFunc[R any] func(ctx context.Context, ids []int64) ([]R, error)

// ScanID reads a single integer identifier column.
func ScanID(rows *sql.Rows) (int64, error) {
	var id int64
	err := rows.Scan(&id)
	return id, err
}

// PaginateExpanded is two-phase pagination for one-to-many joins.
//
// Phase A pages the distinct parent identifiers selected by plan, so child
// rows never inflate the count. Phase B fetches the child-joined rows for
// exactly those identifiers and folds them into one T per parent.
func PaginateExpanded[R, T any](
	ctx context.Context,
	db Querier,
	plan query.Plan,
	p Params,
	fetch FetchFunc[R],
	key func(R) int64,
	fold func(parentID int64, rows []R) T,
) (*Page[T], error) {
	ids, err := Paginate(ctx, db, plan, p, ScanID)
	if err != nil {
		return nil, err
	}
	return Expand(ctx, ids, fetch, key, fold)
}

// Expand runs phase B against an already paged identifier list. Groups are
// emitted in the identifiers' order, whatever order fetch returns rows in.
// Rows inside a group keep their fetch order.
func Expand[R, T any](
	ctx context.Context,
	ids *Page[int64],
	fetch FetchFunc[R],
	key func(R) int64,
	fold func(parentID int64, rows []R) T,
) (*Page[T], error) {
	out := &Page[T]{
		Success:      ids.Success,
		TotalRecords: ids.TotalRecords,
		TotalPages:   ids.TotalPages,
		Page:         ids.Page,
		Next:         ids.Next,
		Prev:         ids.Prev,
		Data:         make([]T, 0, len(ids.Data)),
	}
	if len(ids.Data) == 0 {
		return out, nil
	}

	rows, err := fetch(ctx, ids.Data)
	if err != nil {
		RecordError("database")
		return nil, fmt.Errorf("pagination expand failed: %w", err)
	}

	groups := make(map[int64][]R, len(ids.Data))
	for _, r := range rows {
		k := key(r)
		groups[k] = append(groups[k], r)
	}

	for _, id := range ids.Data {
		group, ok := groups[id]
		if !ok {
			continue
		}
		out.Data = append(out.Data, fold(id, group))
	}
	return out, nil
}
