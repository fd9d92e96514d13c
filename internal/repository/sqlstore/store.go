// Package sqlstore implements the repository contracts over database/sql.
// Statements are composed with squirrel and rendered for the configured
// dialect, so the same code serves MySQL and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

// scanner is the Scan method shared by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// rowsOf adapts a scanner based reader to a pagination.ScanFunc.
func rowsOf[T any](f func(scanner) (T, error)) pagination.ScanFunc[T] {
	return func(rows *sql.Rows) (T, error) { return f(rows) }
}

type store struct {
	db      database.DB
	dialect query.Dialect
}

func (s store) sb() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(s.dialect.Placeholder)
}

func (s store) compose(count, data sq.SelectBuilder) *query.Builder {
	return query.New(s.dialect, count, data)
}

// row runs a single row statement and scans it into dest.
func (s store) row(ctx context.Context, stmt sq.Sqlizer, dest ...any) error {
	text, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build statement: %w", err)
	}
	return s.db.QueryRowContext(ctx, text, args...).Scan(dest...)
}

func (s store) exec(ctx context.Context, stmt sq.Sqlizer) (sql.Result, error) {
	text, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build statement: %w", err)
	}
	return s.db.ExecContext(ctx, text, args...)
}

// affected executes stmt and returns the number of rows it touched.
func (s store) affected(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	res, err := s.exec(ctx, stmt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// insert executes an INSERT and returns the generated key of idColumn.
// PostgreSQL has no LastInsertId, so the key is read back with RETURNING.
func (s store) insert(ctx context.Context, ins sq.InsertBuilder, idColumn string) (int64, error) {
	ins = ins.PlaceholderFormat(s.dialect.Placeholder)
	if s.dialect.Name == query.Postgres.Name {
		var id int64
		err := s.row(ctx, ins.Suffix("RETURNING "+idColumn), &id)
		return id, err
	}
	res, err := s.exec(ctx, ins)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// update executes an UPDATE of one keyed row and maps a miss to sql.ErrNoRows.
// MySQL reports zero affected rows when nothing changed, so a miss is
// confirmed with an existence probe before it is reported.
func (s store) update(ctx context.Context, upd sq.UpdateBuilder, table, idColumn string, id int64) error {
	n, err := s.affected(ctx, upd.PlaceholderFormat(s.dialect.Placeholder))
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	ok, err := s.exists(ctx, table, idColumn, id)
	if err != nil {
		return err
	}
	if !ok {
		return sql.ErrNoRows
	}
	return nil
}

func (s store) exists(ctx context.Context, table, idColumn string, id int64) (bool, error) {
	var n int64
	err := s.row(ctx, s.sb().Select("COUNT(*)").From(table).Where(sq.Eq{idColumn: id}), &n)
	return n > 0, err
}

func (s store) count(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	var n int64
	if err := s.row(ctx, stmt, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s store) sum(ctx context.Context, stmt sq.Sqlizer) (float64, error) {
	var v float64
	if err := s.row(ctx, stmt, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// all runs an unpaged composition.
func all[T any](ctx context.Context, s store, b *query.Builder, scan func(scanner) (T, error)) ([]T, error) {
	stmt, err := b.Rows()
	if err != nil {
		return nil, err
	}
	return pagination.Collect(ctx, s.db, stmt, rowsOf(scan))
}

// list runs a plain squirrel select and scans every row.
func list[T any](ctx context.Context, s store, sel sq.SelectBuilder, scan func(scanner) (T, error)) ([]T, error) {
	text, args, err := sel.PlaceholderFormat(s.dialect.Placeholder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build statement: %w", err)
	}
	return pagination.Collect(ctx, s.db, query.Statement{SQL: text, Args: args}, rowsOf(scan))
}

// page runs a paged composition.
func page[T any](ctx context.Context, s store, b *query.Builder, p pagination.Params, scan func(scanner) (T, error)) (*pagination.Page[T], error) {
	plan, err := b.Plan()
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(ctx, s.db, plan, p, rowsOf(scan))
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
