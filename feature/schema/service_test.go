package schema

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"game-database/core/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSQLiteManager(t *testing.T, ddl ...string) *database.Manager {
	cfg := database.Config{
		Driver:   database.DriverSQLite,
		Database: filepath.Join(t.TempDir(), "game.db"),
	}
	m, err := database.NewManager(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Destroy("test", false) })

	stmt, err := database.NewExecutor(m).CreateStmt(context.Background())
	require.NoError(t, err)
	defer stmt.Close()
	for _, q := range ddl {
		_, err := stmt.Execute(context.Background(), q)
		require.NoError(t, err)
	}
	return m
}

func TestService_Check_SQLite(t *testing.T) {
	m := setupSQLiteManager(t,
		"CREATE TABLE servers (name VARCHAR(25) NOT NULL, ip VARCHAR(25) NOT NULL, port INT NOT NULL)",
		"CREATE TABLE charinfo (id INTEGER PRIMARY KEY, name VARCHAR(35) NOT NULL)",
	)
	svc := NewService(m, &sync.Mutex{}, zap.NewNop())

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", report.Driver)
	assert.False(t, report.Matched)
	assert.Equal(t, StatusOK, report.Tables["servers"].Status)
	assert.Equal(t, StatusOK, report.Tables["charinfo"].Status)
	assert.Equal(t, StatusMissing, report.Tables["friends"].Status)
}

func TestHandleSchemaCheck(t *testing.T) {
	m := setupSQLiteManager(t,
		"CREATE TABLE servers (name VARCHAR(25) NOT NULL, ip VARCHAR(25) NOT NULL, port INT NOT NULL)",
		"CREATE TABLE charinfo (id INTEGER PRIMARY KEY, name VARCHAR(35) NOT NULL)",
		"CREATE TABLE friends (player_id BIGINT NOT NULL, friend_id BIGINT NOT NULL, best_friend INT NOT NULL DEFAULT 0)",
	)

	app := fiber.New()
	require.NoError(t, NewFeature(m, &sync.Mutex{}, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Matched, "report: %+v", report)
}
