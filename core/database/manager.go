package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotConnected is returned by transaction controls when there is no live connection.
var ErrNotConnected = errors.New("database connection is not established or no longer valid")

// OpenFunc opens the physical connection pool for cfg.
type OpenFunc func(ctx context.Context, cfg Config) (*sql.DB, error)

// Option configures a Manager.
type Option func(*Manager)

// WithOpener replaces the function used to open the physical connection.
func WithOpener(open OpenFunc) Option {
	return func(m *Manager) {
		m.open = open
	}
}

// Manager owns the single connection to the game database.
//
// A Manager is not safe for concurrent use. Callers that share one must serialize
// access themselves.
type Manager struct {
	cfg     Config
	logger  *zap.Logger
	dialect dialect
	open    OpenFunc

	pool *sql.DB
	conn *sql.Conn
}

// NewManager creates a Manager for cfg. No connection is made until Connect or
// the first statement.
func NewManager(cfg Config, logger *zap.Logger, opts ...Option) (*Manager, error) {
	d, err := newDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		cfg:     cfg,
		logger:  logger,
		dialect: d,
		open:    d.open,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Connect establishes a new connection and selects the configured schema.
// A previous connection, if any, is released first.
func (m *Manager) Connect(ctx context.Context) error {
	if err := m.release(); err != nil {
		m.logger.Warn("Failed to release previous connection", zap.Error(err))
	}

	endpoint := ParseHost(m.cfg.Host)

	pool, err := m.open(ctx, m.cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// One physical connection, pinned for the lifetime of this Manager session.
	pool.SetMaxOpenConns(1)
	pool.SetMaxIdleConns(1)
	pool.SetConnMaxLifetime(0)

	conn, err := pool.Conn(ctx)
	if err != nil {
		_ = pool.Close()
		return fmt.Errorf("failed to acquire connection: %w", err)
	}

	if err := m.dialect.selectSchema(ctx, conn, m.cfg.Database); err != nil {
		_ = conn.Close()
		_ = pool.Close()
		return fmt.Errorf("failed to select schema %s: %w", m.cfg.Database, err)
	}

	m.pool = pool
	m.conn = conn
	m.dialect.reset()

	m.logger.Info("Connected to game database",
		zap.String("host", endpoint.HostName),
		zap.Bool("local", endpoint.IsLocal()),
		zap.String("database", m.cfg.Database),
	)
	return nil
}

// Destroy releases the connection. It is a no-op without a connection and is
// safe to call more than once. source tags the log line when log is set.
func (m *Manager) Destroy(source string, log bool) error {
	if m.conn == nil && m.pool == nil {
		return nil
	}

	if log {
		if source != "" {
			m.logger.Info("Destroying MySQL connection", zap.String("source", source))
		} else {
			m.logger.Info("Destroying MySQL connection")
		}
	}

	return m.release()
}

// Conn returns the live connection, establishing it when missing and replacing it
// when it is closed or fails validation. Reconnection is attempted once.
func (m *Manager) Conn(ctx context.Context) (*sql.Conn, error) {
	if m.conn == nil {
		m.logger.Info("Trying to reconnect to MySQL")
		if err := m.Connect(ctx); err != nil {
			return nil, err
		}
		return m.conn, nil
	}

	err := m.conn.PingContext(ctx)
	if err == nil {
		return m.conn, nil
	}
	// A cancelled caller says nothing about the connection.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	reason := "invalid"
	if errors.Is(err, sql.ErrConnDone) {
		reason = "closed"
	}
	m.logger.Warn("Trying to reconnect to MySQL from invalid or closed connection",
		zap.String("reason", reason),
		zap.Error(err),
	)

	if err := m.release(); err != nil {
		m.logger.Debug("Failed to release stale connection", zap.Error(err))
	}
	if err := m.Connect(ctx); err != nil {
		return nil, err
	}
	return m.conn, nil
}

// Gorm returns a GORM session bound to the live connection.
func (m *Manager) Gorm(ctx context.Context) (*gorm.DB, error) {
	conn, err := m.Conn(ctx)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(m.dialect.gormDialector(conn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}
	return db.WithContext(ctx), nil
}

// Commit commits the current transaction.
func (m *Manager) Commit(ctx context.Context) error {
	conn, err := m.active(ctx)
	if err != nil {
		return err
	}
	if err := m.dialect.commit(ctx, conn); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// AutoCommit reports whether the session commits every statement implicitly.
func (m *Manager) AutoCommit(ctx context.Context) (bool, error) {
	conn, err := m.active(ctx)
	if err != nil {
		return false, err
	}
	v, err := m.dialect.autoCommit(ctx, conn)
	if err != nil {
		return false, fmt.Errorf("failed to read autocommit: %w", err)
	}
	return v, nil
}

// SetAutoCommit toggles implicit commits for the session.
func (m *Manager) SetAutoCommit(ctx context.Context, value bool) error {
	conn, err := m.active(ctx)
	if err != nil {
		return err
	}
	if err := m.dialect.setAutoCommit(ctx, conn, value); err != nil {
		return fmt.Errorf("failed to set autocommit: %w", err)
	}
	return nil
}

// active returns the current connection. It never reconnects: a new session has
// no open transaction.
func (m *Manager) active(ctx context.Context) (*sql.Conn, error) {
	if m.conn == nil {
		return nil, ErrNotConnected
	}
	if err := m.conn.PingContext(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}
	return m.conn, nil
}

func (m *Manager) release() error {
	var errs []error
	if m.conn != nil {
		if err := m.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			errs = append(errs, err)
		}
	}
	if m.pool != nil {
		if err := m.pool.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.conn = nil
	m.pool = nil

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
