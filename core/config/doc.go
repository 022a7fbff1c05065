// Package config provides configuration management for the game database service.
//
// It utilizes Viper for loading configuration from environment variables and a
// .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
//   - Database (MYSQL_*): host (optionally unix:// or pipe://), port, username,
//     password, database, driver (mysql, sqlite), timeout_seconds
//   - Server (SERVER_*): HTTP port and API key
//   - Log (LOG_*): level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Host)
package config
