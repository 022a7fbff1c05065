package gamedb

import (
	"context"
	"database/sql"
	"sync"

	"game-database/core/database"
)

type synchronized struct {
	db GameDatabase
	mu sync.Locker
}

// Synchronized serializes every call to db on mu. Statements returned by
// CreateStmt and CreatePreppedStmt are not covered once the call returns.
func Synchronized(db GameDatabase, mu sync.Locker) GameDatabase {
	return &synchronized{db: db, mu: mu}
}

func (s *synchronized) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Connect(ctx)
}

func (s *synchronized) Destroy(source string, log bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Destroy(source, log)
}

func (s *synchronized) CreateStmt(ctx context.Context) (*database.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.CreateStmt(ctx)
}

func (s *synchronized) CreatePreppedStmt(ctx context.Context, query string) (*sql.Stmt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.CreatePreppedStmt(ctx, query)
}

func (s *synchronized) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Commit(ctx)
}

func (s *synchronized) GetAutoCommit(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.GetAutoCommit(ctx)
}

func (s *synchronized) SetAutoCommit(ctx context.Context, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.SetAutoCommit(ctx, value)
}

func (s *synchronized) GetMasterInfo(ctx context.Context) (*MasterInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.GetMasterInfo(ctx)
}

func (s *synchronized) GetApprovedCharacterNames(ctx context.Context) (*ApprovedNames, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.GetApprovedCharacterNames(ctx)
}

func (s *synchronized) GetFriendsList(ctx context.Context, charID uint32) (*FriendsList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.GetFriendsList(ctx, charID)
}

func (s *synchronized) DoesCharacterExist(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.DoesCharacterExist(ctx, name)
}
