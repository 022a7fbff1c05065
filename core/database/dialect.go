package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"game-database/core/utils"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedDriver is returned for a Config.Driver other than mysql or sqlite.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// dialect holds everything that differs between engines.
type dialect interface {
	open(ctx context.Context, cfg Config) (*sql.DB, error)
	selectSchema(ctx context.Context, conn *sql.Conn, name string) error
	gormDialector(conn *sql.Conn) gorm.Dialector
	commit(ctx context.Context, conn *sql.Conn) error
	autoCommit(ctx context.Context, conn *sql.Conn) (bool, error)
	setAutoCommit(ctx context.Context, conn *sql.Conn, value bool) error
	// reset forgets session state after a new connection is established.
	reset()
}

func newDialect(driver string) (dialect, error) {
	switch driver {
	case "", DriverMySQL:
		return mysqlDialect{}, nil
	case DriverSQLite:
		return &sqliteDialect{autoCommitOn: true}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
}

// gormConfig silences GORM; connection events are logged by the Manager.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
}

// driverConfig builds the go-sql-driver configuration for cfg.
// The schema is left empty because Connect selects it explicitly.
func driverConfig(cfg Config) *mysql.Config {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dc := mysql.NewConfig()
	dc.User = cfg.Username
	dc.Passwd = cfg.Password
	dc.Net, dc.Addr = ParseHost(cfg.Host).Network(cfg.Port)
	dc.Timeout = time.Duration(timeout) * time.Second
	dc.ParseTime = true
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc
}

type mysqlDialect struct{}

func (mysqlDialect) open(_ context.Context, cfg Config) (*sql.DB, error) {
	dc := driverConfig(cfg)
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		DSN:       dc.FormatDSN(),
		DSNConfig: dc,
	}), gormConfig())
	if err != nil {
		return nil, err
	}
	return db.DB()
}

func (mysqlDialect) selectSchema(ctx context.Context, conn *sql.Conn, name string) error {
	if name == "" {
		return nil
	}
	_, err := conn.ExecContext(ctx, "USE `"+strings.ReplaceAll(name, "`", "``")+"`")
	return err
}

func (mysqlDialect) gormDialector(conn *sql.Conn) gorm.Dialector {
	return gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	})
}

func (mysqlDialect) commit(ctx context.Context, conn *sql.Conn) error {
	_, err := conn.ExecContext(ctx, "COMMIT")
	return err
}

func (mysqlDialect) autoCommit(ctx context.Context, conn *sql.Conn) (bool, error) {
	var v any
	if err := conn.QueryRowContext(ctx, "SELECT @@autocommit").Scan(&v); err != nil {
		return false, err
	}
	return utils.ToBool(v), nil
}

func (mysqlDialect) setAutoCommit(ctx context.Context, conn *sql.Conn, value bool) error {
	stmt := "SET autocommit=0"
	if value {
		stmt = "SET autocommit=1"
	}
	_, err := conn.ExecContext(ctx, stmt)
	return err
}

func (mysqlDialect) reset() {}

// sqliteDialect emulates MySQL session auto-commit with explicit transactions:
// with auto-commit off a transaction is always open, and COMMIT starts the next one.
type sqliteDialect struct {
	autoCommitOn bool
}

func (*sqliteDialect) open(_ context.Context, cfg Config) (*sql.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database), gormConfig())
	if err != nil {
		return nil, err
	}
	return db.DB()
}

func (*sqliteDialect) selectSchema(context.Context, *sql.Conn, string) error {
	return nil
}

func (*sqliteDialect) gormDialector(conn *sql.Conn) gorm.Dialector {
	return &sqlite.Dialector{Conn: conn}
}

func (d *sqliteDialect) commit(ctx context.Context, conn *sql.Conn) error {
	if d.autoCommitOn {
		return nil
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return err
	}
	_, err := conn.ExecContext(ctx, "BEGIN")
	return err
}

func (d *sqliteDialect) autoCommit(context.Context, *sql.Conn) (bool, error) {
	return d.autoCommitOn, nil
}

func (d *sqliteDialect) setAutoCommit(ctx context.Context, conn *sql.Conn, value bool) error {
	if value == d.autoCommitOn {
		return nil
	}
	stmt := "BEGIN"
	if value {
		stmt = "COMMIT"
	}
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return err
	}
	d.autoCommitOn = value
	return nil
}

func (d *sqliteDialect) reset() {
	d.autoCommitOn = true
}
