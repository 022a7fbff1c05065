package lookup

import (
	"context"

	"game-database/core/gamedb"

	"go.uber.org/zap"
)

// Service answers read-only game database queries.
type Service struct {
	db     gamedb.GameDatabase
	logger *zap.Logger
}

// NewService creates a lookup service. db must already be safe for concurrent
// use (see gamedb.Synchronized) because HTTP handlers run in parallel.
func NewService(db gamedb.GameDatabase, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// MasterInfo returns the master server address, or nil.
func (s *Service) MasterInfo(ctx context.Context) (*gamedb.MasterInfo, error) {
	return s.db.GetMasterInfo(ctx)
}

// ApprovedNames returns the approved character names, or nil.
func (s *Service) ApprovedNames(ctx context.Context) (*gamedb.ApprovedNames, error) {
	return s.db.GetApprovedCharacterNames(ctx)
}

// Friends returns the friends of a character, or nil.
func (s *Service) Friends(ctx context.Context, charID uint32) (*gamedb.FriendsList, error) {
	return s.db.GetFriendsList(ctx, charID)
}

// CharacterExists reports whether a character name is taken.
func (s *Service) CharacterExists(ctx context.Context, name string) (bool, error) {
	return s.db.DoesCharacterExist(ctx, name)
}
