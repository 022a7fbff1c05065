package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want Endpoint
	}{
		{"TCP", "db.example.com", Endpoint{HostName: "db.example.com"}},
		{"TCP With Port", "127.0.0.1:3307", Endpoint{HostName: "127.0.0.1:3307"}},
		{"TCP URL", "tcp://localhost:3001/darkflame", Endpoint{HostName: "tcp://localhost:3001/darkflame"}},
		{"Unix Socket", "unix:///var/run/mysqld/mysqld.sock", Endpoint{HostName: "unix://localhost", LocalSocket: "/var/run/mysqld/mysqld.sock"}},
		{"Named Pipe", "pipe://MySQL", Endpoint{HostName: "pipe://localhost", Pipe: "MySQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHost(tt.host))
		})
	}
}

func TestEndpoint_Network(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		wantNet  string
		wantAddr string
	}{
		{"Default Port", "localhost", 3306, "tcp", "localhost:3306"},
		{"Configured Port", "db.example.com", 3307, "tcp", "db.example.com:3307"},
		{"Explicit Port Wins", "db.example.com:4000", 3306, "tcp", "db.example.com:4000"},
		{"TCP URL", "tcp://localhost:3001/darkflame", 3306, "tcp", "localhost:3001"},
		{"IPv6", "::1", 3306, "tcp", "[::1]:3306"},
		{"Zero Port", "localhost", 0, "tcp", "localhost:3306"},
		{"Unix Socket", "unix:///tmp/mysql.sock", 3306, "unix", "/tmp/mysql.sock"},
		{"Named Pipe", "pipe://MySQL", 3306, "pipe", "MySQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, addr := ParseHost(tt.host).Network(tt.port)
			assert.Equal(t, tt.wantNet, network)
			assert.Equal(t, tt.wantAddr, addr)
		})
	}
}

func TestEndpoint_IsLocal(t *testing.T) {
	assert.False(t, ParseHost("localhost").IsLocal())
	assert.True(t, ParseHost("unix:///tmp/mysql.sock").IsLocal())
	assert.True(t, ParseHost("pipe://MySQL").IsLocal())
}

func TestDriverConfig(t *testing.T) {
	t.Run("Unix Socket", func(t *testing.T) {
		dc := driverConfig(Config{
			Host:     "unix:///var/run/mysqld/mysqld.sock",
			Username: "darkflame",
			Password: "p@ss/word",
			Database: "darkflame",
		})
		assert.Equal(t, "unix", dc.Net)
		assert.Equal(t, "/var/run/mysqld/mysqld.sock", dc.Addr)
		assert.Equal(t, "darkflame", dc.User)
		assert.Equal(t, "p@ss/word", dc.Passwd)
		// Schema is selected after connecting.
		assert.Empty(t, dc.DBName)
	})

	t.Run("Default Timeout", func(t *testing.T) {
		dc := driverConfig(Config{Host: "localhost", Port: 3306})
		assert.Equal(t, "tcp", dc.Net)
		assert.Equal(t, "localhost:3306", dc.Addr)
		assert.Equal(t, "30s", dc.Timeout.String())
	})
}
