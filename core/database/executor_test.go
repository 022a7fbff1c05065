package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockExecutor(t *testing.T) (*Executor, sqlmock.Sqlmock) {
	db, mock := newMock(t)
	open, _ := mockOpener(db)
	m := newTestManager(t, open)

	mock.ExpectExec(useSchema).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, m.Connect(context.Background()))

	return NewExecutor(m), mock
}

func TestExecuteQueryUnique(t *testing.T) {
	t.Run("Cursor Owns Statement", func(t *testing.T) {
		exec, mock := setupMockExecutor(t)
		query := "SELECT name FROM charinfo;"

		mock.ExpectPrepare(regexp.QuoteMeta(query)).WillBeClosed().
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Alpha").AddRow("Beta")).
			RowsWillBeClosed()

		cur, err := exec.ExecuteQueryUnique(context.Background(), query)
		require.NoError(t, err)

		var names []string
		for cur.Next() {
			var name string
			require.NoError(t, cur.Scan(&name))
			names = append(names, name)
		}
		require.NoError(t, cur.Err())
		assert.Equal(t, []string{"Alpha", "Beta"}, names)

		assert.NoError(t, cur.Close())
		assert.NoError(t, cur.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query Failure Releases Statement", func(t *testing.T) {
		exec, mock := setupMockExecutor(t)
		boom := errors.New("Table 'darkflame.charinfo' doesn't exist")

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT name FROM charinfo;")).WillBeClosed().
			ExpectQuery().WillReturnError(boom)

		cur, err := exec.ExecuteQueryUnique(context.Background(), "SELECT name FROM charinfo;")
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, cur)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Prepare Failure", func(t *testing.T) {
		exec, mock := setupMockExecutor(t)
		boom := errors.New("You have an error in your SQL syntax")

		mock.ExpectPrepare("SELEC").WillReturnError(boom)

		cur, err := exec.ExecuteQueryUnique(context.Background(), "SELEC name FROM charinfo;")
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to prepare statement")
		assert.Nil(t, cur)
	})
}

func TestExecuteStmtUnique(t *testing.T) {
	exec, mock := setupMockExecutor(t)
	query := "SELECT name from charinfo where name = ?;"

	mock.ExpectPrepare(regexp.QuoteMeta(query)).WillBeClosed().
		ExpectQuery().WithArgs("Alpha").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Alpha")).
		RowsWillBeClosed()

	stmt, err := exec.CreatePreppedStmt(context.Background(), query)
	require.NoError(t, err)

	cur, err := exec.ExecuteStmtUnique(context.Background(), stmt, "Alpha")
	require.NoError(t, err)
	assert.True(t, cur.Next())
	require.NoError(t, cur.Close())

	// The cursor leaves the statement to the caller.
	require.NoError(t, stmt.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStmt(t *testing.T) {
	exec, mock := setupMockExecutor(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM servers WHERE name='test'")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM servers")).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	stmt, err := exec.CreateStmt(ctx)
	require.NoError(t, err)

	res, err := stmt.Execute(ctx, "DELETE FROM servers WHERE name='test'")
	require.NoError(t, err)
	affected, _ := res.RowsAffected()
	assert.Equal(t, int64(1), affected)

	rows, err := stmt.ExecuteQuery(ctx, "SELECT COUNT(*) FROM servers")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	require.NoError(t, stmt.Close())
	_, err = stmt.Execute(ctx, "SELECT 1")
	assert.ErrorIs(t, err, ErrStatementClosed)
	_, err = stmt.ExecuteQuery(ctx, "SELECT 1")
	assert.ErrorIs(t, err, ErrStatementClosed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
