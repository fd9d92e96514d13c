package pagination

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ghayaruae/crm-server/internal/query"
)

// Querier is the read surface the engine needs. *sql.DB and the circuit
// breaker in the database package both satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ScanFunc reads the current row into a T.
type ScanFunc[T any] func(rows *sql.Rows) (T, error)

// Paginate executes plan.CountSQL with the filter arguments, then plan.DataSQL
// with offset and limit appended, and returns the page envelope. Exactly two
// statements are issued; any failure aborts the call.
func Paginate[T any](ctx context.Context, db Querier, plan query.Plan, p Params, scan ScanFunc[T]) (*Page[T], error) {
	start := time.Now()

	total, err := Count(ctx, db, plan.CountSQL, plan.Args)
	if err != nil {
		RecordError("database")
		return nil, fmt.Errorf("pagination query failed: %w", err)
	}

	items, err := collect(ctx, db, plan.DataSQL, plan.PageArgs(p.Offset(), p.Limit), scan)
	if err != nil {
		RecordError("database")
		return nil, fmt.Errorf("pagination query failed: %w", err)
	}

	RecordDuration("repository", time.Since(start).Seconds())
	return NewPage(total, p, items), nil
}

// Count runs a statement whose first column is a row count.
func Count(ctx context.Context, db Querier, sqlText string, args []any) (int64, error) {
	rows, err := db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return 0, err
	}
	defer func() { _ = rows.Close() }()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

func collect[T any](ctx context.Context, db Querier, sqlText string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Collect runs an unpaged statement and scans every row.
func Collect[T any](ctx context.Context, db Querier, stmt query.Statement, scan ScanFunc[T]) ([]T, error) {
	return collect(ctx, db, stmt.SQL, stmt.Args, scan)
}
