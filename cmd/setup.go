package cmd

import (
	"fmt"
	"sync"

	"game-database/core/config"
	"game-database/core/database"
	"game-database/core/gamedb"
	"game-database/core/gamedb/mysqldb"
	"game-database/core/logger"

	"go.uber.org/zap"
)

// runtime holds everything a command needs to talk to the game database.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	manager *database.Manager
	mu      *sync.Mutex
	db      gamedb.GameDatabase
}

// newRuntime loads configuration and wires the backend. It does not connect;
// the first query connects lazily.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	mgr, err := database.NewManager(cfg.Database, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	mu := &sync.Mutex{}
	backend := mysqldb.New(database.NewExecutor(mgr), logg)

	return &runtime{
		cfg:     cfg,
		logger:  logg,
		manager: mgr,
		mu:      mu,
		db:      gamedb.Synchronized(backend, mu),
	}, nil
}

func (r *runtime) close(source string) {
	if err := r.db.Destroy(source, true); err != nil {
		r.logger.Warn("Failed to destroy database connection", zap.Error(err))
	}
	_ = r.logger.Sync()
}
