package database

// Config holds configuration for the game database connection.
type Config struct {
	// Host is the database host. A "unix://" or "pipe://" prefix selects a local
	// socket or named pipe instead of TCP.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is used when Host is a TCP address without an explicit port.
	Port int `mapstructure:"port" default:"3306"`
	// Username is the database user.
	Username string `mapstructure:"username" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Database is the schema selected after connecting. For sqlite it is the file path.
	Database string `mapstructure:"database" default:"darkflame"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// TimeoutSeconds bounds the initial dial only.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
