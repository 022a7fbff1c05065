// Package database owns the single connection to the game database.
//
// It is the resilience layer underneath the game queries: every statement is
// prepared on a connection that has just been validated, and a closed or
// invalid connection is replaced transparently before use.
//
// # Manager
//
// Manager holds exactly one physical connection (a *sql.Conn pinned from a pool
// capped at one). Connect opens it and selects the configured schema; Destroy
// releases it and may be called any number of times. Conn is the validity path:
//
//   - no connection: connect
//   - ping fails (closed or invalid): release the stale handle, connect once
//   - reconnect fails: return the error, no retry
//
// Commit, AutoCommit and SetAutoCommit act on the current session and return
// ErrNotConnected instead of reconnecting.
//
// # Addressing
//
// The host may be a TCP address or carry a "unix://" or "pipe://" prefix. ParseHost
// rewrites socket and pipe hosts to a loopback placeholder and carries the real
// path separately, since go-sql-driver/mysql cannot parse those schemes.
//
// # Executor
//
// Executor builds statements on top of a Manager. The "Unique" helpers return a
// Cursor that must be closed exactly once by the caller; closing it releases the
// statement it owns as well.
//
// # Drivers
//
// MySQL is the production engine. SQLite (Driver "sqlite", Database as file path)
// runs the same SQL for local development and tests.
//
// # Usage
//
//	mgr, err := database.NewManager(cfg.Database, logg)
//	if err != nil {
//	    return err
//	}
//	defer mgr.Destroy("shutdown", true)
//
//	exec := database.NewExecutor(mgr)
//	cur, err := exec.ExecuteQueryUnique(ctx, "SELECT name FROM charinfo;")
//	if err != nil {
//	    return err
//	}
//	defer cur.Close()
//
//	columns, err := database.GetTableColumns(gormDB, "friends")
package database
