package sqlstore_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
	"github.com/ghayaruae/crm-server/internal/repository/sqlstore"
)

func newTarget(t *testing.T) *model.Target {
	t.Helper()
	from, err := model.ParseDate("2025-06-01")
	require.NoError(t, err)
	to, err := model.ParseDate("2025-06-30")
	require.NoError(t, err)
	by := int64(3)
	at := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	return &model.Target{SalesmanID: 7, From: from, To: to, Amount: 1500, AssignedBy: &by, AssignedTime: &at}
}

func TestTargetStore_Save(t *testing.T) {
	t.Run("insert on mysql", func(t *testing.T) {
		db, mock := newMock(t)
		repo := sqlstore.NewTargetStore(db, query.MySQL)
		tg := newTarget(t)

		mock.ExpectExec(sqlParts(
			"INSERT INTO business__salesmans_targets (business_salesman_id,business_salesman_target,business_salesman_target_from,business_salesman_target_to,target_assigned_by,target_assigned_datetime) VALUES (?,?,?,?,?,?)",
		)).
			WithArgs(int64(7), 1500.0, "2025-06-01", "2025-06-30", int64(3), *tg.AssignedTime).
			WillReturnResult(sqlmock.NewResult(11, 1))

		id, err := repo.Save(context.Background(), tg)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("insert on postgres returns the key", func(t *testing.T) {
		db, mock := newMock(t)
		repo := sqlstore.NewTargetStore(db, query.Postgres)

		mock.ExpectQuery(sqlParts("VALUES ($1,$2,$3,$4,$5,$6) RETURNING business_salesman_target_id")).
			WillReturnRows(sqlmock.NewRows([]string{"business_salesman_target_id"}).AddRow(12))

		id, err := repo.Save(context.Background(), newTarget(t))
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})

	t.Run("update of a missing row", func(t *testing.T) {
		db, mock := newMock(t)
		repo := sqlstore.NewTargetStore(db, query.MySQL)
		tg := newTarget(t)
		tg.TargetID = 99

		mock.ExpectExec(sqlParts("UPDATE business__salesmans_targets SET", "WHERE business_salesman_target_id = ?")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(sqlParts("SELECT COUNT(*) FROM business__salesmans_targets WHERE business_salesman_target_id = ?")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := repo.Save(context.Background(), tg)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("update without changes", func(t *testing.T) {
		db, mock := newMock(t)
		repo := sqlstore.NewTargetStore(db, query.MySQL)
		tg := newTarget(t)
		tg.TargetID = 5

		mock.ExpectExec(sqlParts("UPDATE business__salesmans_targets SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(sqlParts("SELECT COUNT(*) FROM business__salesmans_targets")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		id, err := repo.Save(context.Background(), tg)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})
}

func TestTargetStore_Report(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewTargetStore(db, query.MySQL)
	salesman := int64(7)

	mock.ExpectQuery(sqlParts(
		"LEFT JOIN business__salesmans s ON s.business_salesman_id = t.business_salesman_id",
		"WHERE t.business_salesman_id = ? AND DATE(t.business_salesman_target_from) >= ?",
		"ORDER BY t.business_salesman_target_id DESC",
	)).
		WithArgs(int64(7), "2025-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := repo.Report(context.Background(), repository.TargetReportFilter{FromDate: "2025-01-01", SalesmanID: &salesman})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFollowupStore_List(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewFollowupStore(db, query.MySQL)

	// the salesman name filter needs the joins on the count statement too
	mock.ExpectQuery(sqlParts(
		"SELECT COUNT(*) AS total_records FROM business__salesmans_followups f",
		"LEFT JOIN business__salesmans s ON s.business_salesman_id = f.business_salesman_id",
		"LEFT JOIN business b ON b.business_id = f.business_id",
		"WHERE s.business_salesmen_name LIKE ?",
	)).
		WithArgs("%ali%").
		WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(1))
	mock.ExpectQuery(sqlParts("s.business_salesmen_name, b.business_name FROM business__salesmans_followups f", "LIMIT ?, ?")).
		WithArgs("%ali%", 0, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "salesman", "business", "type", "date", "response", "remark", "salesman_name", "business_name",
		}).AddRow(9, 7, 3, "Call", "2025-06-02", nil, "call back", "Ali", "Gulf Parts"))

	page, err := repo.List(context.Background(), "ali", query.Desc, firstPage)
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	got := page.Data[0]
	assert.Equal(t, "Call", got.Type)
	assert.Equal(t, "2025-06-02", got.Date.String())
	assert.Equal(t, "Ali", *got.SalesmanName)
}

func TestFollowupStore_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewFollowupStore(db, query.MySQL)

	mock.ExpectExec(sqlParts("DELETE FROM business__salesmans_followups WHERE business_salesman_followup_id = ?")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFollowupStore_TypeChart(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewFollowupStore(db, query.MySQL)

	mock.ExpectQuery(sqlParts("COUNT(CASE WHEN business_salesman_followup_type = 'Meet' THEN 1 END)")).
		WillReturnRows(sqlmock.NewRows([]string{"meet", "call", "visit", "whatsapp", "mail"}).AddRow(1, 2, 3, 4, 5))

	got, err := repo.TypeChart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.FollowTypeChart{Meet: 1, Call: 2, Visit: 3, Whatsapp: 4, Email: 5}, got)
}

func TestPartRequestStore_Latest(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewPartRequestStore(db, query.MySQL)

	requested := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(sqlParts("ORDER BY r.inventory_part_request_id DESC LIMIT 5")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "store", "salesman", "name", "brand", "number", "qty", "note", "price", "supersedes", "status", "date", "salesman_name",
		}).AddRow(3, 0, 7, "Brake pad", nil, "BP-1", 4, nil, 12.5, nil, 0, requested, "Omar"))

	got, err := repo.Latest(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Brake pad", got[0].PartName)
	assert.Equal(t, 12.5, *got[0].MarketPrice)
	assert.Equal(t, "Omar", *got[0].SalesmanName)
}

func TestPrivilegeStore_ReplacePermissions(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		db, mock := newMock(t)
		repo := sqlstore.NewPrivilegeStore(db, query.MySQL)

		mock.ExpectBegin()
		mock.ExpectExec(sqlParts("DELETE FROM business__salesman_privilage WHERE business_salesman_id = ?")).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(sqlParts(
			"INSERT INTO business__salesman_privilage (business_salesman_id,privilege_id,privilege_view,privilege_edit,privilege_delete) VALUES (?,?,?,?,?),(?,?,?,?,?)",
		)).
			WithArgs(int64(4), int64(1), 1, 0, 0, int64(4), int64(2), 1, 0, 0).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplacePermissions(context.Background(), 4, []int64{1, 2}))
	})

	t.Run("rolls back when an insert fails", func(t *testing.T) {
		db, mock := newMock(t)
		repo := sqlstore.NewPrivilegeStore(db, query.MySQL)

		mock.ExpectBegin()
		mock.ExpectExec(sqlParts("DELETE FROM business__salesman_privilage")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(sqlParts("INSERT INTO business__salesman_privilage")).
			WillReturnError(errors.New("foreign key violation"))
		mock.ExpectRollback()

		err := repo.ReplacePermissions(context.Background(), 4, []int64{1})
		assert.ErrorContains(t, err, "insert permissions: foreign key violation")
	})
}

func TestSalesmanStore_FindByLoginID(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewSalesmanStore(db, query.MySQL)

	mock.ExpectQuery(sqlParts("FROM business__salesmans WHERE business_salesman_login_id = ?")).
		WithArgs("omar").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "contact", "login", "password"}).
			AddRow(7, "Omar", nil, "+971500000000", "omar", "$2a$10$hash"))

	s, err := repo.FindByLoginID(context.Background(), "omar")
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.SalesmanID)
	assert.Equal(t, "$2a$10$hash", s.Password)
}

func TestSalesmanStore_FindByID_Postgres(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewSalesmanStore(db, query.Postgres)

	mock.ExpectQuery(sqlParts("FROM business__salesmans WHERE business_salesman_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "contact", "login"}))

	_, err := repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInventoryStore_CrossParts(t *testing.T) {
	db, mock := newMock(t)
	repo := sqlstore.NewInventoryStore(db, query.MySQL)

	mock.ExpectQuery(sqlParts("FROM inventory__stock_cross WHERE part_number = ? AND part_sup_id = ?")).
		WithArgs("04465-0K090", "21").
		WillReturnRows(sqlmock.NewRows([]string{"total_records"}).AddRow(1))
	mock.ExpectQuery(sqlParts("ORDER BY inventory_stock_oe_link_id DESC LIMIT ?, ?")).
		WithArgs("04465-0K090", "21", 0, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "part", "sup", "cross", "brand"}).
			AddRow(1, "04465-0K090", 21, "GDB3454", "TRW"))

	page, err := repo.CrossParts(context.Background(), "04465-0K090", "21", query.Desc, firstPage)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "TRW", *page.Data[0].CrossBrandName)
}
