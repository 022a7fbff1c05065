package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Executor turns queries into statements and cursors on the Manager's connection.
// Every statement is prepared on a connection that has just passed validation.
type Executor struct {
	manager *Manager
}

// NewExecutor creates an Executor over m.
func NewExecutor(m *Manager) *Executor {
	return &Executor{manager: m}
}

// Manager returns the connection manager behind the executor.
func (e *Executor) Manager() *Manager {
	return e.manager
}

// CreateStmt returns a non-parameterized statement. The caller must Close it.
// Rows returned by ExecuteQuery must be closed before the next statement: the
// connection is validated first, and on MySQL a connection with an unread result
// fails validation and is replaced.
func (e *Executor) CreateStmt(ctx context.Context) (*Statement, error) {
	conn, err := e.manager.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &Statement{conn: conn}, nil
}

// CreatePreppedStmt prepares query. The caller must Close the statement.
func (e *Executor) CreatePreppedStmt(ctx context.Context, query string) (*sql.Stmt, error) {
	conn, err := e.manager.Conn(ctx)
	if err != nil {
		return nil, err
	}

	stmt, err := conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	return stmt, nil
}

// ExecuteQueryUnique prepares and runs query. The cursor owns the statement.
// Close the cursor before issuing the next statement: validation of a connection
// still streaming a result fails on MySQL, and the reconnect invalidates the cursor.
func (e *Executor) ExecuteQueryUnique(ctx context.Context, query string, args ...any) (*Cursor, error) {
	stmt, err := e.CreatePreppedStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to execute query: %w", err), stmt.Close())
	}
	return &Cursor{Rows: rows, stmt: stmt}, nil
}

// ExecuteStmtUnique runs a prepared statement. The cursor owns only the rows;
// stmt stays with the caller. As with ExecuteQueryUnique, close the cursor before
// the next statement.
func (e *Executor) ExecuteStmtUnique(ctx context.Context, stmt *sql.Stmt, args ...any) (*Cursor, error) {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return &Cursor{Rows: rows}, nil
}

// Commit commits the current transaction.
func (e *Executor) Commit(ctx context.Context) error {
	return e.manager.Commit(ctx)
}

// GetAutoCommit reports the session auto-commit mode.
func (e *Executor) GetAutoCommit(ctx context.Context) (bool, error) {
	return e.manager.AutoCommit(ctx)
}

// SetAutoCommit sets the session auto-commit mode.
func (e *Executor) SetAutoCommit(ctx context.Context, value bool) error {
	return e.manager.SetAutoCommit(ctx, value)
}
