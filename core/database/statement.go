package database

import (
	"context"
	"database/sql"
	"errors"
)

// ErrStatementClosed is returned when a closed Statement is used.
var ErrStatementClosed = errors.New("statement is closed")

// Statement runs ad-hoc, non-parameterized SQL on the connection it was created on.
// The caller owns it and must Close it.
type Statement struct {
	conn   *sql.Conn
	closed bool
}

// Execute runs a statement that returns no rows.
func (s *Statement) Execute(ctx context.Context, query string) (sql.Result, error) {
	if s.closed {
		return nil, ErrStatementClosed
	}
	return s.conn.ExecContext(ctx, query)
}

// ExecuteQuery runs a query. The returned rows must be closed by the caller.
func (s *Statement) ExecuteQuery(ctx context.Context, query string) (*sql.Rows, error) {
	if s.closed {
		return nil, ErrStatementClosed
	}
	return s.conn.QueryContext(ctx, query)
}

// Close detaches the statement from its connection. It does not close the connection.
func (s *Statement) Close() error {
	s.closed = true
	s.conn = nil
	return nil
}

// Cursor is an exclusively owned result set. Close releases the rows and, when the
// cursor was created from a query string, the prepared statement behind them.
type Cursor struct {
	*sql.Rows
	stmt   *sql.Stmt
	closed bool
}

// Close releases the cursor. Calling it again is a no-op.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.Rows.Close()
	if c.stmt != nil {
		err = errors.Join(err, c.stmt.Close())
	}
	return err
}
