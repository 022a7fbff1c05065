package schema

import (
	"context"
	"sync"

	"game-database/core/database"

	"go.uber.org/zap"
)

// Service runs schema checks on the shared game database connection.
type Service struct {
	manager *database.Manager
	mu      sync.Locker
	logger  *zap.Logger
}

// NewService creates a schema service. mu must be the locker guarding every
// other user of manager.
func NewService(manager *database.Manager, mu sync.Locker, logger *zap.Logger) *Service {
	return &Service{manager: manager, mu: mu, logger: logger}
}

// Check inspects the live schema.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.manager.Gorm(ctx)
	if err != nil {
		return nil, err
	}
	return CheckSchema(db)
}
