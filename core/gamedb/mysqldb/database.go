package mysqldb

import (
	"context"
	"database/sql"
	"fmt"

	"game-database/core/database"
	"game-database/core/gamedb"

	"go.uber.org/zap"
)

// Database implements gamedb.GameDatabase on a MySQL-compatible engine.
type Database struct {
	exec   *database.Executor
	logger *zap.Logger
}

var _ gamedb.GameDatabase = (*Database)(nil)

// New creates a Database running its statements through exec.
func New(exec *database.Executor, logger *zap.Logger) *Database {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Database{exec: exec, logger: logger}
}

// Connect establishes the connection.
func (d *Database) Connect(ctx context.Context) error {
	return d.exec.Manager().Connect(ctx)
}

// Destroy releases the connection.
func (d *Database) Destroy(source string, log bool) error {
	return d.exec.Manager().Destroy(source, log)
}

// CreateStmt returns an ad-hoc statement. The caller must Close it.
func (d *Database) CreateStmt(ctx context.Context) (*database.Statement, error) {
	return d.exec.CreateStmt(ctx)
}

// CreatePreppedStmt prepares query. The caller must Close the statement.
func (d *Database) CreatePreppedStmt(ctx context.Context, query string) (*sql.Stmt, error) {
	return d.exec.CreatePreppedStmt(ctx, query)
}

// Commit commits the current transaction. It does not reconnect.
func (d *Database) Commit(ctx context.Context) error {
	return d.exec.Commit(ctx)
}

// GetAutoCommit reports the session auto-commit mode.
func (d *Database) GetAutoCommit(ctx context.Context) (bool, error) {
	return d.exec.GetAutoCommit(ctx)
}

// SetAutoCommit sets the session auto-commit mode.
func (d *Database) SetAutoCommit(ctx context.Context, value bool) error {
	return d.exec.SetAutoCommit(ctx, value)
}

// GetMasterInfo returns the master server address. If several rows are named
// master, one of them is returned.
func (d *Database) GetMasterInfo(ctx context.Context) (*gamedb.MasterInfo, error) {
	cur, err := d.exec.ExecuteQueryUnique(ctx, queryMasterInfo)
	if err != nil {
		return nil, d.failed(fmt.Errorf("failed to query master info: %w", err))
	}
	defer cur.Close()

	if !cur.Next() {
		if err := rowsErr(cur, "master info"); err != nil {
			return nil, d.failed(err)
		}
		return nil, nil
	}

	var info gamedb.MasterInfo
	if err := cur.Scan(&info.IP, &info.Port); err != nil {
		return nil, d.failed(fmt.Errorf("failed to scan master info: %w", err))
	}
	return &info, nil
}

// GetApprovedCharacterNames returns every character name.
func (d *Database) GetApprovedCharacterNames(ctx context.Context) (*gamedb.ApprovedNames, error) {
	cur, err := d.exec.ExecuteQueryUnique(ctx, queryApprovedNames)
	if err != nil {
		return nil, d.failed(fmt.Errorf("failed to query approved names: %w", err))
	}
	defer cur.Close()

	var names []string
	for cur.Next() {
		var name string
		if err := cur.Scan(&name); err != nil {
			return nil, d.failed(fmt.Errorf("failed to scan approved name: %w", err))
		}
		names = append(names, name)
	}
	if err := cur.Err(); err != nil {
		return nil, d.failed(fmt.Errorf("failed to read approved names: %w", err))
	}

	if len(names) == 0 {
		return nil, nil
	}
	return &gamedb.ApprovedNames{Names: names}, nil
}

// GetFriendsList returns the friends of charID regardless of which side of the
// pair charID was stored on.
func (d *Database) GetFriendsList(ctx context.Context, charID uint32) (*gamedb.FriendsList, error) {
	stmt, err := d.exec.CreatePreppedStmt(ctx, queryFriendsList)
	if err != nil {
		return nil, d.failed(fmt.Errorf("failed to query friends list: %w", err))
	}
	defer stmt.Close()

	cur, err := d.exec.ExecuteStmtUnique(ctx, stmt, charID, charID, charID)
	if err != nil {
		return nil, d.failed(fmt.Errorf("failed to query friends list: %w", err))
	}
	defer cur.Close()

	var friends []gamedb.FriendData
	for cur.Next() {
		var (
			fd     gamedb.FriendData
			status gamedb.FriendStatus
		)
		if err := cur.Scan(&fd.FriendID, &status, &fd.FriendName); err != nil {
			return nil, d.failed(fmt.Errorf("failed to scan friend of %d: %w", charID, err))
		}
		fd.IsBestFriend = status.IsBestFriend()
		friends = append(friends, fd)
	}
	if err := cur.Err(); err != nil {
		return nil, d.failed(fmt.Errorf("failed to read friends list: %w", err))
	}

	if len(friends) == 0 {
		return nil, nil
	}
	return &gamedb.FriendsList{Friends: friends}, nil
}

// DoesCharacterExist reports whether a character named name exists.
func (d *Database) DoesCharacterExist(ctx context.Context, name string) (bool, error) {
	cur, err := d.exec.ExecuteQueryUnique(ctx, queryCharacterExists, name)
	if err != nil {
		return false, d.failed(fmt.Errorf("failed to query character %q: %w", name, err))
	}
	defer cur.Close()

	if cur.Next() {
		return true, nil
	}
	if err := cur.Err(); err != nil {
		return false, d.failed(fmt.Errorf("failed to read character %q: %w", name, err))
	}
	return false, nil
}

// rowsErr distinguishes an empty result (nil) from a failed iteration.
func rowsErr(cur *database.Cursor, what string) error {
	if err := cur.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	return nil
}

// failed logs an engine failure before it is returned to the caller.
func (d *Database) failed(err error) error {
	d.logger.Error("Game database query failed", zap.Error(err))
	return err
}
