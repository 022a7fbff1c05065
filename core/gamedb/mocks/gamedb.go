package mocks

import (
	"context"
	"database/sql"

	"game-database/core/database"
	"game-database/core/gamedb"

	"github.com/stretchr/testify/mock"
)

// GameDatabase is a mock implementation of gamedb.GameDatabase
type GameDatabase struct {
	mock.Mock
}

var _ gamedb.GameDatabase = (*GameDatabase)(nil)

func (m *GameDatabase) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *GameDatabase) Destroy(source string, log bool) error {
	args := m.Called(source, log)
	return args.Error(0)
}

func (m *GameDatabase) CreateStmt(ctx context.Context) (*database.Statement, error) {
	args := m.Called(ctx)
	if stmt, ok := args.Get(0).(*database.Statement); ok {
		return stmt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GameDatabase) CreatePreppedStmt(ctx context.Context, query string) (*sql.Stmt, error) {
	args := m.Called(ctx, query)
	if stmt, ok := args.Get(0).(*sql.Stmt); ok {
		return stmt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GameDatabase) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *GameDatabase) GetAutoCommit(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *GameDatabase) SetAutoCommit(ctx context.Context, value bool) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *GameDatabase) GetMasterInfo(ctx context.Context) (*gamedb.MasterInfo, error) {
	args := m.Called(ctx)
	if info, ok := args.Get(0).(*gamedb.MasterInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GameDatabase) GetApprovedCharacterNames(ctx context.Context) (*gamedb.ApprovedNames, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).(*gamedb.ApprovedNames); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GameDatabase) GetFriendsList(ctx context.Context, charID uint32) (*gamedb.FriendsList, error) {
	args := m.Called(ctx, charID)
	if list, ok := args.Get(0).(*gamedb.FriendsList); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GameDatabase) DoesCharacterExist(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
