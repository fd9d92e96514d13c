package pagination_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

type target struct {
	ID     int64
	Amount float64
}

func scanTarget(rows *sql.Rows) (target, error) {
	var tg target
	err := rows.Scan(&tg.ID, &tg.Amount)
	return tg, err
}

var targetsPlan = query.Plan{
	CountSQL: "SELECT COUNT(*) AS total_records FROM business__salesmans_targets WHERE business_salesman_id = ?",
	DataSQL:  "SELECT business_salesman_target_id, business_salesman_target FROM business__salesmans_targets WHERE business_salesman_id = ? ORDER BY business_salesman_target_id DESC LIMIT ?, ?",
	Args:     []any{int64(7)},
}

func TestPaginate_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.CountSQL)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(45))
	mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.DataSQL)).
		WithArgs(int64(7), 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"business_salesman_target_id", "business_salesman_target"}).
			AddRow(25, 1000.0).
			AddRow(24, 500.0))

	page, err := pagination.Paginate(context.Background(), db, targetsPlan, pagination.Params{Page: 2, Limit: 20}, scanTarget)
	require.NoError(t, err)

	assert.True(t, page.Success)
	assert.Equal(t, int64(45), page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.True(t, page.Next)
	assert.True(t, page.Prev)
	assert.Equal(t, []target{{ID: 25, Amount: 1000}, {ID: 24, Amount: 500}}, page.Data)
	assert.Equal(t, []any{int64(7)}, targetsPlan.Args, "plan args must not grow")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginate_BeyondLastPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.CountSQL)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(45))
	mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.DataSQL)).
		WithArgs(int64(7), 60, 20).
		WillReturnRows(sqlmock.NewRows([]string{"business_salesman_target_id", "business_salesman_target"}))

	page, err := pagination.Paginate(context.Background(), db, targetsPlan, pagination.Params{Page: 4, Limit: 20}, scanTarget)
	require.NoError(t, err)

	assert.Equal(t, int64(45), page.TotalRecords)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.False(t, page.Next)
	assert.True(t, page.Prev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginate_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.CountSQL)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.DataSQL)).
			WithArgs(int64(7), 0, 20).
			WillReturnRows(sqlmock.NewRows([]string{"business_salesman_target_id", "business_salesman_target"}).AddRow(1, 10.0))
	}

	p := pagination.Params{Page: 1, Limit: 20}
	first, err := pagination.Paginate(context.Background(), db, targetsPlan, p, scanTarget)
	require.NoError(t, err)
	second, err := pagination.Paginate(context.Background(), db, targetsPlan, p, scanTarget)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginate_Errors(t *testing.T) {
	t.Run("count statement fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.CountSQL)).
			WillReturnError(errors.New("Unknown column 'x'"))

		page, err := pagination.Paginate(context.Background(), db, targetsPlan, pagination.Params{Page: 1, Limit: 20}, scanTarget)

		assert.Nil(t, page)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pagination query failed: Unknown column 'x'")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("data statement fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.CountSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta(targetsPlan.DataSQL)).
			WillReturnError(errors.New("sql: expected 3 arguments, got 2"))

		page, err := pagination.Paginate(context.Background(), db, targetsPlan, pagination.Params{Page: 1, Limit: 20}, scanTarget)

		assert.Nil(t, page)
		assert.ErrorContains(t, err, "pagination query failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

type itemRow struct {
	OrderID int64
	Line    string
}

func TestExpand_GroupsInPhaseAOrder(t *testing.T) {
	ids := pagination.NewPage(2, pagination.Params{Page: 1, Limit: 20}, []int64{102, 101})

	fetch := func(_ context.Context, got []int64) ([]itemRow, error) {
		assert.Equal(t, []int64{102, 101}, got)
		// store order differs from phase A order
		return []itemRow{
			{OrderID: 101, Line: "a"},
			{OrderID: 102, Line: "b"},
			{OrderID: 101, Line: "c"},
		}, nil
	}

	page, err := pagination.Expand(context.Background(), ids, fetch,
		func(r itemRow) int64 { return r.OrderID },
		func(id int64, rows []itemRow) []string {
			lines := []string{}
			for _, r := range rows {
				lines = append(lines, r.Line)
			}
			return lines
		})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"b"}, {"a", "c"}}, page.Data)
	assert.Equal(t, int64(2), page.TotalRecords)
}

func TestExpand_EmptySkipsFetch(t *testing.T) {
	ids := pagination.NewPage[int64](0, pagination.Params{Page: 1, Limit: 20}, nil)

	page, err := pagination.Expand(context.Background(), ids,
		func(context.Context, []int64) ([]itemRow, error) {
			t.Fatal("fetch must not run for an empty id page")
			return nil, nil
		},
		func(r itemRow) int64 { return r.OrderID },
		func(int64, []itemRow) int { return 0 })
	require.NoError(t, err)

	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPaginateExpanded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	plan := query.Plan{
		CountSQL: "SELECT COUNT(DISTINCT o.business_order_id) AS total_records FROM business__orders o WHERE o.business_order_business_id IN (?)",
		DataSQL:  "SELECT DISTINCT o.business_order_id FROM business__orders o WHERE o.business_order_business_id IN (?) ORDER BY o.business_order_id DESC LIMIT ?, ?",
		Args:     []any{int64(5)},
	}
	mock.ExpectQuery(regexp.QuoteMeta(plan.CountSQL)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(plan.DataSQL)).
		WithArgs(int64(5), 0, 20).
		WillReturnRows(sqlmock.NewRows([]string{"business_order_id"}).AddRow(102).AddRow(101))

	fetchErr := errors.New("boom")
	_, err = pagination.PaginateExpanded(context.Background(), db, plan, pagination.Params{Page: 1, Limit: 20},
		func(context.Context, []int64) ([]itemRow, error) { return nil, fetchErr },
		func(r itemRow) int64 { return r.OrderID },
		func(int64, []itemRow) int { return 0 })

	assert.ErrorIs(t, err, fetchErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
