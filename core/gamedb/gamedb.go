package gamedb

import (
	"context"
	"database/sql"

	"game-database/core/database"
)

// GameDatabase is the data access contract used by the game servers.
//
// Queries that match no rows return a nil result and a nil error. Engine
// failures are returned as errors. Implementations are not required to be safe
// for concurrent use; see Synchronized.
type GameDatabase interface {
	// Connect establishes the connection.
	Connect(ctx context.Context) error
	// Destroy releases the connection. source tags the log line when log is set.
	Destroy(source string, log bool) error
	// CreateStmt returns an ad-hoc statement. The caller must Close it.
	CreateStmt(ctx context.Context) (*database.Statement, error)
	// CreatePreppedStmt prepares query. The caller must Close the statement.
	CreatePreppedStmt(ctx context.Context, query string) (*sql.Stmt, error)
	// Commit commits the current transaction.
	Commit(ctx context.Context) error
	// GetAutoCommit reports the session auto-commit mode.
	GetAutoCommit(ctx context.Context) (bool, error)
	// SetAutoCommit sets the session auto-commit mode.
	SetAutoCommit(ctx context.Context, value bool) error

	// GetMasterInfo returns the master server address, or nil when none is registered.
	GetMasterInfo(ctx context.Context) (*MasterInfo, error)
	// GetApprovedCharacterNames returns all character names, or nil when there are none.
	GetApprovedCharacterNames(ctx context.Context) (*ApprovedNames, error)
	// GetFriendsList returns the friends of charID, or nil when there are none.
	GetFriendsList(ctx context.Context, charID uint32) (*FriendsList, error)
	// DoesCharacterExist reports whether a character with name exists.
	DoesCharacterExist(ctx context.Context, name string) (bool, error)
}
